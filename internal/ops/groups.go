package ops

import (
	"context"
	"strings"

	"github.com/dtkit/dtk/internal/audit"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// GroupParams describes a group location to create.
type GroupParams struct {
	// Location is the slash-separated group path, e.g. /Projects/Q3.
	// Intermediate groups are created as needed; creating an existing
	// location returns the existing group.
	Location string `json:"location"`
	Database string `json:"database,omitempty"`
}

// CreateGroup creates (or returns) the group at the given location.
func (s *Service) CreateGroup(ctx context.Context, p GroupParams) (*record.Info, error) {
	if strings.Trim(p.Location, "/") == "" {
		return nil, &record.ValidationError{Field: "location", Reason: "required"}
	}
	if !jxa.IsSafe(p.Location) {
		return nil, &record.ValidationError{Field: "location", Reason: "contains control characters"}
	}
	if p.Database == "" {
		p.Database = s.db
	}
	if !jxa.IsSafe(p.Database) {
		return nil, &record.ValidationError{Field: "database", Reason: "contains control characters"}
	}
	location := "/" + strings.Trim(p.Location, "/")

	sc := s.script().Helper(databaseFragment).
		Linef("const db = databaseNamed(%s);", jxa.Quote(p.Database)).
		Linef("const group = app.createLocation(%s, { in: db });", jxa.Quote(location)).
		Line(`if (!group) { throw new Error("create location failed"); }`).
		Line("return emit({ success: true, record: recordInfo(group) });")

	var payload recordPayload
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	_ = s.log.Log(audit.Entry{
		Operation: "group",
		UUID:      payload.Record.UUID,
		Name:      payload.Record.Name,
		Database:  payload.Record.Database,
		Detail:    map[string]interface{}{"location": location},
	})
	return &payload.Record, nil
}
