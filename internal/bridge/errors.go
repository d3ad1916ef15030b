package bridge

import "fmt"

// HostError reports a failure of the scripting host process itself:
// it could not be started, exited non-zero, or exceeded the deadline.
// Script-level failures never surface as HostError; they arrive as a
// success:false payload on stdout with a zero exit status.
type HostError struct {
	Timeout bool
	Stderr  string
	Err     error
}

func (e *HostError) Error() string {
	if e.Timeout {
		return "scripting host timed out"
	}
	if e.Stderr != "" {
		return fmt.Sprintf("scripting host failed: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("scripting host failed: %v", e.Err)
}

func (e *HostError) Unwrap() error { return e.Err }

// DecodeError reports stdout that is not a JSON outcome object. This is
// a contract defect in the generated script, not a user-correctable
// condition.
type DecodeError struct {
	Output string
	Err    error
}

func (e *DecodeError) Error() string {
	out := e.Output
	if len(out) > 200 {
		out = out[:200] + "..."
	}
	return fmt.Sprintf("undecodable script output: %v: %q", e.Err, out)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Script failure codes set by generated fragments.
const (
	CodeNotFound  = "not_found"
	CodeAmbiguous = "ambiguous"
)

// ScriptError is a success:false outcome promoted to a Go error. Code is
// set for resolution failures and empty for plain application errors.
type ScriptError struct {
	Code    string
	Message string
}

func (e *ScriptError) Error() string { return e.Message }

// NotFound reports whether err is a script-level "record not found".
func (e *ScriptError) NotFound() bool { return e.Code == CodeNotFound }

// Ambiguous reports whether err is a script-level ambiguous match.
func (e *ScriptError) Ambiguous() bool { return e.Code == CodeAmbiguous }
