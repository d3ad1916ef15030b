// Package record locates records inside the scripted application.
//
// A Lookup carries the caller-supplied identifiers; Fragment emits the
// script routine that turns those identifiers into exactly one record
// handle inside a single script invocation.
package record

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dtkit/dtk/internal/jxa"
)

// Lookup identifies a single record. At least one of UUID, ID, Path or
// Name must be set. ID is only meaningful together with Database because
// numeric ids repeat across databases; UUID is globally unique across
// all open databases.
type Lookup struct {
	UUID     string `json:"uuid,omitempty"`
	ID       int    `json:"id,omitempty"`
	Path     string `json:"path,omitempty"`
	Name     string `json:"name,omitempty"`
	Database string `json:"database,omitempty"`
}

// ValidationError reports an identifier that cannot be used, before any
// script is generated or host process started.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsEmpty reports whether no identifier field is set.
func (l Lookup) IsEmpty() bool {
	return l.UUID == "" && l.ID == 0 && l.Path == "" && l.Name == ""
}

// Validate checks the Lookup invariants and the embeddability of every
// string field. It never contacts the application.
func (l Lookup) Validate() error {
	if l.IsEmpty() {
		return &ValidationError{Reason: "no identifier supplied: need uuid, id, path or name"}
	}
	if l.ID != 0 && l.Database == "" {
		return &ValidationError{Field: "id", Reason: "numeric id requires a database name"}
	}
	if l.ID < 0 {
		return &ValidationError{Field: "id", Reason: "must be positive"}
	}
	if l.UUID != "" {
		if _, err := uuid.Parse(l.UUID); err != nil {
			return &ValidationError{Field: "uuid", Reason: "not a valid UUID"}
		}
	}
	for field, value := range map[string]string{
		"path":     l.Path,
		"name":     l.Name,
		"database": l.Database,
	} {
		if !jxa.IsSafe(value) {
			return &ValidationError{Field: field, Reason: "contains control characters"}
		}
	}
	return nil
}

// String describes the lookup for error messages and audit entries.
func (l Lookup) String() string {
	switch {
	case l.UUID != "":
		return "uuid " + l.UUID
	case l.ID != 0:
		return fmt.Sprintf("id %d in %q", l.ID, l.Database)
	case l.Path != "" && l.Database != "":
		return fmt.Sprintf("path %q in %q", l.Path, l.Database)
	case l.Path != "":
		return fmt.Sprintf("path %q", l.Path)
	case l.Database != "":
		return fmt.Sprintf("name %q in %q", l.Name, l.Database)
	default:
		return fmt.Sprintf("name %q", l.Name)
	}
}
