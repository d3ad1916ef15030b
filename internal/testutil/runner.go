// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"sync"
)

// FakeRunner stands in for the osascript host in tests. It records every
// script it is handed and replays canned responses in order, repeating
// the final response once the queue is exhausted.
type FakeRunner struct {
	mu        sync.Mutex
	Scripts   []string
	responses []fakeResponse
}

type fakeResponse struct {
	out []byte
	err error
}

// Respond queues a stdout payload.
func (f *FakeRunner) Respond(out string) *FakeRunner {
	f.responses = append(f.responses, fakeResponse{out: []byte(out)})
	return f
}

// Fail queues a transport-level error.
func (f *FakeRunner) Fail(err error) *FakeRunner {
	f.responses = append(f.responses, fakeResponse{err: err})
	return f
}

func (f *FakeRunner) Run(_ context.Context, script string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Scripts = append(f.Scripts, script)
	if len(f.responses) == 0 {
		return []byte(`{"success": true}`), nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp.out, resp.err
}

// LastScript returns the most recently executed script text.
func (f *FakeRunner) LastScript() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Scripts) == 0 {
		return ""
	}
	return f.Scripts[len(f.Scripts)-1]
}
