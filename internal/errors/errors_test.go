package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"validation": {Validation, "Validation Error"},
		"safety":     {Safety, "Safety Check Failed"},
		"release":    {Release, "Release Error"},
		"gateway":    {Gateway, "Repository Error"},
		"config":     {Configuration, "Configuration Error"},
		"argument":   {Argument, "Argument Error"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.category.String())
		})
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	base := fmt.Errorf("ref lock held")

	err := Wrap(base, Gateway, "try again later")
	require.NotNil(t, err)
	assert.Equal(t, Gateway, err.Category)
	assert.Equal(t, "ref lock held", err.Message)
	assert.Equal(t, []string{"try again later"}, err.Remediation)

	assert.Nil(t, Wrap(nil, Gateway))
}

func TestWrapWithMessage(t *testing.T) {
	base := fmt.Errorf("permission denied")

	err := WrapWithMessage(base, Gateway, "creating release tag")
	require.NotNil(t, err)
	assert.Equal(t, "creating release tag: permission denied", err.Message)
}

func TestAsCLIError(t *testing.T) {
	cliErr := NewSafetyError("dirty tree", "commit your changes")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.True(t, IsCLIError(cliErr))

	plain := fmt.Errorf("plain")
	assert.Nil(t, AsCLIError(plain))
	assert.False(t, IsCLIError(plain))
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewValidationError("unknown commit type \"wip\"",
		"Use one of: feat, fix",
	)
	err.Usage = "relvet commit <type> <message> [scope]"

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Validation Error]: unknown commit type")
	assert.Contains(t, out, "Usage: relvet commit")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "• Use one of: feat, fix")
}

func TestDomainMessages(t *testing.T) {
	assert.Equal(t, Safety, DirtyWorkingTree().Category)
	assert.Equal(t, Safety, WrongBranch("feature/x", []string{"main"}).Category)
	assert.Equal(t, Release, NothingToRelease().Category)
	assert.Equal(t, Release, PartialRelease("tag missing").Category)
	assert.Equal(t, Gateway, NotARepository("/tmp/nowhere").Category)
	assert.Equal(t, Validation, InvalidCommitType("wip", []string{"feat"}).Category)
}
