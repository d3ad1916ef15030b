package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoggerAppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "audit.log")
	l := New(path, true)

	entries := []Entry{
		{Operation: "create", Name: "Report", Database: "Work"},
		{Operation: "delete", UUID: "abc-123", Target: `uuid abc-123`},
	}
	for _, e := range entries {
		if err := l.Log(e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var got []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("line not valid JSON: %v", err)
		}
		got = append(got, e)
	}

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Operation != "create" || got[0].Name != "Report" {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[1].UUID != "abc-123" {
		t.Errorf("second entry = %+v", got[1])
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestDisabledLoggerWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	l := New(path, false)

	if err := l.Log(Entry{Operation: "delete"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("disabled logger created a file")
	}
}
