package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		caps      TerminalCapabilities
		checkmark string
		failure   string
	}{
		"unicode terminal": {
			caps:      TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			checkmark: "✓",
			failure:   "✗",
		},
		"ascii fallback": {
			caps:      TerminalCapabilities{IsTTY: true},
			checkmark: "[OK]",
			failure:   "[FAIL]",
		},
		"non-tty": {
			caps:      TerminalCapabilities{},
			checkmark: "[OK]",
			failure:   "[FAIL]",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			symbols := SelectSymbols(tc.caps)
			assert.Equal(t, tc.checkmark, symbols.Checkmark)
			assert.Equal(t, tc.failure, symbols.Failure)
		})
	}
}

func TestDetectTerminalCapabilitiesRespectsASCII(t *testing.T) {
	t.Setenv("RELVET_ASCII", "1")
	caps := DetectTerminalCapabilities()
	assert.False(t, caps.SupportsUnicode)
}
