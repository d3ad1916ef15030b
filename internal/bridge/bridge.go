// Package bridge dispatches generated scripts to the external scripting
// host and decodes their JSON outcome.
//
// Each call is an independent out-of-process invocation: the bridge
// keeps no state between calls, performs no retries, and holds no lock.
// Serialization of concurrent mutations is the application's problem,
// not ours.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single host invocation when the caller's
// context carries no deadline of its own.
const DefaultTimeout = 60 * time.Second

// Runner executes script text in the scripting host and returns its
// stdout. Implementations must honor ctx cancellation by killing the
// host process.
type Runner interface {
	Run(ctx context.Context, script string) ([]byte, error)
}

// OsascriptRunner runs scripts with the system osascript binary in
// JavaScript (JXA) mode.
type OsascriptRunner struct {
	// Path is the osascript executable; empty means "osascript" from PATH.
	Path string
}

func (r *OsascriptRunner) Run(ctx context.Context, script string) ([]byte, error) {
	path := r.Path
	if path == "" {
		path = "osascript"
	}

	cmd := exec.CommandContext(ctx, path, "-l", "JavaScript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return nil, &HostError{Timeout: true, Stderr: stderr.String(), Err: ctxErr}
	}
	if err != nil {
		return nil, &HostError{Stderr: stderr.String(), Err: err}
	}
	return stdout.Bytes(), nil
}

// Outcome is the minimum shape every script must print: a single JSON
// object with a success flag. Success=false carries a non-empty error
// message and optionally a failure code; operation-specific fields are
// only meaningful when Success is true.
type Outcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// outcome lets Execute read the envelope out of any payload struct that
// embeds Outcome.
type outcome interface {
	scriptError() *ScriptError
}

func (o *Outcome) scriptError() *ScriptError {
	if o.Success {
		return nil
	}
	msg := o.Error
	if msg == "" {
		// success:false with no message still violates the contract,
		// but callers need something to report.
		msg = "script reported failure without a message"
	}
	return &ScriptError{Code: o.Code, Message: msg}
}

// Bridge runs scripts and decodes results.
type Bridge struct {
	runner  Runner
	timeout time.Duration
}

// New creates a Bridge. A nil runner selects the osascript runner; a
// non-positive timeout selects DefaultTimeout.
func New(runner Runner, timeout time.Duration) *Bridge {
	if runner == nil {
		runner = &OsascriptRunner{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bridge{runner: runner, timeout: timeout}
}

// Execute runs script and decodes its stdout into result, which must be
// a pointer to a struct embedding Outcome. Transport and decoding
// failures return *HostError and *DecodeError; a success:false payload
// returns *ScriptError with result left fully decoded.
func (b *Bridge) Execute(ctx context.Context, script string, result outcome) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	out, err := b.runner.Run(ctx, script)
	if err != nil {
		return err
	}

	out = bytes.TrimSpace(out)
	if err := json.Unmarshal(out, result); err != nil {
		return &DecodeError{Output: string(out), Err: err}
	}

	if serr := result.scriptError(); serr != nil {
		return serr
	}
	return nil
}
