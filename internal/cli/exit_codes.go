package cli

import "fmt"

// Exit codes for the relvet CLI. The contract is deliberately small:
// anything that is not a success — validation failure, safety abort,
// operator cancel, gateway error — exits 1.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a failed or aborted command
	ExitFailure = 1
)

// ExitError carries an exit code for a failure whose diagnostic has
// already been printed. Execute recognizes it and skips re-printing.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
