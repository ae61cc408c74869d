package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relerr "github.com/relvet/relvet/internal/errors"
)

func TestCommitDryRun(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"type and message": {
			args: []string{"commit", "feat", "add signup", "--dry-run"},
			want: "feat: add signup\n",
		},
		"with scope": {
			args: []string{"commit", "fix", "handle empty scope", "parser", "--dry-run"},
			want: "fix(parser): handle empty scope\n",
		},
		"breaking marker": {
			args: []string{"commit", "refactor", "drop v1 endpoints", "api", "--breaking", "--dry-run"},
			want: "refactor(api)!: drop v1 endpoints\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCommitRejectsUnknownType(t *testing.T) {
	_, err := executeCommand(t, "commit", "wip", "something", "--dry-run")
	require.Error(t, err)

	cliErr := relerr.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, relerr.Validation, cliErr.Category)
	assert.Contains(t, cliErr.Message, "wip")
}

func TestCommitRejectsEmptyMessage(t *testing.T) {
	_, err := executeCommand(t, "commit", "feat", "   ", "--dry-run")
	require.Error(t, err)

	cliErr := relerr.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, relerr.Validation, cliErr.Category)
}

func TestCommitRequiresArguments(t *testing.T) {
	_, err := executeCommand(t, "commit", "feat")
	require.Error(t, err)
}
