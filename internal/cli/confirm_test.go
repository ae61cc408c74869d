package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalConfirmer(t *testing.T) {
	tests := map[string]struct {
		input string
		want  bool
	}{
		"yes":               {input: "y\n", want: true},
		"yes word":          {input: "yes\n", want: true},
		"uppercase yes":     {input: "Y\n", want: true},
		"no":                {input: "n\n", want: false},
		"empty defaults no": {input: "\n", want: false},
		"eof defaults no":   {input: "", want: false},
		"garbage is no":     {input: "sure\n", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := &bytes.Buffer{}
			c := &terminalConfirmer{
				in:          strings.NewReader(tc.input),
				out:         out,
				interactive: true,
			}

			got, err := c.Confirm("Proceed?")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Proceed? [y/N]")
		})
	}
}

func TestTerminalConfirmerNonInteractiveDeclines(t *testing.T) {
	out := &bytes.Buffer{}
	c := &terminalConfirmer{
		in:          strings.NewReader("y\n"),
		out:         out,
		interactive: false,
	}

	got, err := c.Confirm("Proceed?")
	require.NoError(t, err)
	assert.False(t, got, "a prompt that cannot reach an operator must decline")
	assert.Contains(t, out.String(), "non-interactive")
}
