// Package audit provides an append-only log of mutating operations.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry records one mutating operation sent to the application.
type Entry struct {
	Timestamp time.Time              `json:"ts"`
	Operation string                 `json:"op"` // create, delete, move, rename, set, tag...
	UUID      string                 `json:"uuid,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Database  string                 `json:"database,omitempty"`
	Target    string                 `json:"target,omitempty"` // lookup or destination description
	Detail    map[string]interface{} `json:"detail,omitempty"`
}

// Logger appends entries to a JSONL file. A disabled logger is a no-op,
// so call sites never need to branch.
type Logger struct {
	path    string
	enabled bool
	mu      sync.Mutex
}

// New creates a logger writing to path. If enabled is false the logger
// discards entries.
func New(path string, enabled bool) *Logger {
	if !enabled || path == "" {
		return &Logger{}
	}
	return &Logger{path: path, enabled: true}
}

// Log appends one entry.
func (l *Logger) Log(entry Entry) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create audit directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}
