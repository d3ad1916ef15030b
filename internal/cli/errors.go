// Package cli implements the command-line interface.
package cli

import (
	"errors"

	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/record"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Resolution errors
	ErrRecordNotFound  = "RECORD_NOT_FOUND"
	ErrRecordAmbiguous = "RECORD_AMBIGUOUS"

	// Bridge errors
	ErrHostError     = "HOST_ERROR"
	ErrScriptTimeout = "SCRIPT_TIMEOUT"
	ErrScriptError   = "SCRIPT_ERROR"
	ErrDecodeError   = "DECODE_ERROR"

	// Input errors
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrInvalidInput     = "INVALID_INPUT"
	ErrMissingArgument  = "MISSING_ARGUMENT"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// MCP client errors
	ErrMCPClientInvalid    = "MCP_CLIENT_INVALID"
	ErrMCPConfigWriteError = "MCP_CONFIG_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// classifyErr maps an operation error to a stable code and an optional
// suggestion for the caller.
func classifyErr(err error) (code, suggestion string) {
	var verr *record.ValidationError
	if errors.As(err, &verr) {
		return ErrValidationFailed, "Identify the record with --uuid, --id and --database, --path, or --name"
	}

	var serr *bridge.ScriptError
	if errors.As(err, &serr) {
		switch {
		case serr.NotFound():
			return ErrRecordNotFound, "Check the identifier; a --name lookup is exact-match only"
		case serr.Ambiguous():
			return ErrRecordAmbiguous, "Narrow the lookup with --database, or use --uuid"
		default:
			return ErrScriptError, ""
		}
	}

	var herr *bridge.HostError
	if errors.As(err, &herr) {
		if herr.Timeout {
			return ErrScriptTimeout, "Increase --timeout or timeout_seconds in config"
		}
		return ErrHostError, "Is the application running?"
	}

	var derr *bridge.DecodeError
	if errors.As(err, &derr) {
		return ErrDecodeError, ""
	}

	return ErrInternal, ""
}

// opError routes an operation error through the JSON/text error paths.
func opError(err error) error {
	code, suggestion := classifyErr(err)
	return handleError(code, err, suggestion)
}
