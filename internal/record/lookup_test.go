package record

import (
	"errors"
	"testing"
)

func TestLookupValidate(t *testing.T) {
	tests := []struct {
		name      string
		lookup    Lookup
		wantErr   bool
		wantField string
	}{
		{"uuid only", Lookup{UUID: "5f0c2a6e-9d14-4c8f-b36e-7a2d9c41e8aa"}, false, ""},
		{"path only", Lookup{Path: "/Inbox/Report.md"}, false, ""},
		{"name only", Lookup{Name: "Report"}, false, ""},
		{"name with database", Lookup{Name: "Report", Database: "Work"}, false, ""},
		{"id with database", Lookup{ID: 42, Database: "Work"}, false, ""},
		{"empty", Lookup{}, true, ""},
		{"database alone", Lookup{Database: "Work"}, true, ""},
		{"id without database", Lookup{ID: 42}, true, "id"},
		{"negative id", Lookup{ID: -1, Database: "Work"}, true, "id"},
		{"malformed uuid", Lookup{UUID: "not-a-uuid"}, true, "uuid"},
		{"control char in name", Lookup{Name: "bad\x00name"}, true, "name"},
		{"control char in path", Lookup{Path: "/a\x1b/b"}, true, "path"},
		{"control char in database", Lookup{Name: "x", Database: "W\x00"}, true, "database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestLookupString(t *testing.T) {
	tests := []struct {
		lookup Lookup
		want   string
	}{
		{Lookup{UUID: "abc"}, "uuid abc"},
		{Lookup{ID: 7, Database: "Work"}, `id 7 in "Work"`},
		{Lookup{Path: "/Inbox/a.md"}, `path "/Inbox/a.md"`},
		{Lookup{Path: "/Inbox/a.md", Database: "Work"}, `path "/Inbox/a.md" in "Work"`},
		{Lookup{Name: "Report"}, `name "Report"`},
		{Lookup{Name: "Report", Database: "Work"}, `name "Report" in "Work"`},
	}
	for _, tt := range tests {
		if got := tt.lookup.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
