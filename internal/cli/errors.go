package cli

import (
	"errors"
	"fmt"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by tooling.
const (
	ErrVaultNotFound     = "VAULT_NOT_FOUND"
	ErrVaultNotSpecified = "VAULT_NOT_SPECIFIED"
	ErrConfigInvalid     = "CONFIG_INVALID"
	ErrNodeNotFound      = "NODE_NOT_FOUND"
	ErrDatabaseError     = "DATABASE_ERROR"
	ErrInvalidInput      = "INVALID_INPUT"
)

// handleError reports an error in the active output mode and returns a
// non-nil error so the process exits non-zero.
func handleError(code string, err error, suggestion string) error {
	if isJSONOutput() {
		outputError(code, err.Error(), suggestion)
		return errSilent
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n\n%s", err, suggestion)
	}
	return err
}

// errSilent signals a failure already reported as JSON.
var errSilent = errors.New("")
