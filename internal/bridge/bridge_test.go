package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dtkit/dtk/internal/testutil"
)

type countPayload struct {
	Outcome
	Count int `json:"count"`
}

func TestExecuteDecodesTypedPayload(t *testing.T) {
	runner := (&testutil.FakeRunner{}).Respond(`{"success": true, "count": 3}`)
	b := New(runner, 0)

	var got countPayload
	if err := b.Execute(context.Background(), "script", &got); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Count != 3 {
		t.Errorf("count = %d, want 3", got.Count)
	}
}

func TestExecuteScriptFailure(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		wantNotFound  bool
		wantAmbiguous bool
		wantMessage   string
	}{
		{
			name:        "application error",
			payload:     `{"success": false, "error": "rating out of range"}`,
			wantMessage: "rating out of range",
		},
		{
			name:         "not found",
			payload:      `{"success": false, "error": "record not found: name Report", "code": "not_found"}`,
			wantNotFound: true,
			wantMessage:  "record not found: name Report",
		},
		{
			name:          "ambiguous",
			payload:       `{"success": false, "error": "ambiguous: 2 records named \"Report\"", "code": "ambiguous"}`,
			wantAmbiguous: true,
			wantMessage:   `ambiguous: 2 records named "Report"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New((&testutil.FakeRunner{}).Respond(tt.payload), 0)

			var out Outcome
			err := b.Execute(context.Background(), "script", &out)

			var serr *ScriptError
			if !errors.As(err, &serr) {
				t.Fatalf("error type = %T (%v), want *ScriptError", err, err)
			}
			if serr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", serr.Message, tt.wantMessage)
			}
			if serr.NotFound() != tt.wantNotFound {
				t.Errorf("NotFound() = %v, want %v", serr.NotFound(), tt.wantNotFound)
			}
			if serr.Ambiguous() != tt.wantAmbiguous {
				t.Errorf("Ambiguous() = %v, want %v", serr.Ambiguous(), tt.wantAmbiguous)
			}
		})
	}
}

func TestExecuteUndecodableOutput(t *testing.T) {
	for _, output := range []string{"", "not json", `"just a string"`, "execution error: -1708"} {
		b := New((&testutil.FakeRunner{}).Respond(output), 0)

		var out Outcome
		err := b.Execute(context.Background(), "script", &out)

		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("output %q: error type = %T, want *DecodeError", output, err)
		}
	}
}

func TestExecuteHostFailurePassthrough(t *testing.T) {
	hostErr := &HostError{Err: errors.New("exit status 1"), Stderr: "syntax error"}
	b := New((&testutil.FakeRunner{}).Fail(hostErr), 0)

	var out Outcome
	err := b.Execute(context.Background(), "script", &out)

	var herr *HostError
	if !errors.As(err, &herr) {
		t.Fatalf("error type = %T, want *HostError", err)
	}
	if herr.Timeout {
		t.Error("unexpected timeout variant")
	}
}

func TestExecuteTimeoutVariant(t *testing.T) {
	b := New((&testutil.FakeRunner{}).Fail(&HostError{Timeout: true, Err: context.DeadlineExceeded}), time.Millisecond)

	var out Outcome
	err := b.Execute(context.Background(), "script", &out)

	var herr *HostError
	if !errors.As(err, &herr) {
		t.Fatalf("error type = %T, want *HostError", err)
	}
	if !herr.Timeout {
		t.Error("expected timeout variant")
	}
	// A timed-out call must never also claim a decoded outcome.
	if out.Success {
		t.Error("outcome populated despite timeout")
	}
}

func TestExecuteAppliesDefaultDeadline(t *testing.T) {
	runner := &deadlineProbe{}
	b := New(runner, 5*time.Second)

	var out Outcome
	if err := b.Execute(context.Background(), "script", &out); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !runner.hadDeadline {
		t.Error("bridge did not bound host runtime with a deadline")
	}
}

type deadlineProbe struct {
	hadDeadline bool
}

func (p *deadlineProbe) Run(ctx context.Context, _ string) ([]byte, error) {
	_, p.hadDeadline = ctx.Deadline()
	return []byte(`{"success": true}`), nil
}

func TestScriptFailureWithoutMessage(t *testing.T) {
	b := New((&testutil.FakeRunner{}).Respond(`{"success": false}`), 0)

	var out Outcome
	err := b.Execute(context.Background(), "script", &out)

	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("error type = %T, want *ScriptError", err)
	}
	if serr.Message == "" {
		t.Error("empty message for contract-violating payload")
	}
}
