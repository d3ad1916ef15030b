package ops

import (
	"context"

	"github.com/dtkit/dtk/internal/bridge"
)

// Database describes one open database.
type Database struct {
	Name  string `json:"name"`
	UUID  string `json:"uuid"`
	Path  string `json:"path"`
	Items int    `json:"items"`
}

// OpenDatabases lists all databases currently open in the application.
func (s *Service) OpenDatabases(ctx context.Context) ([]Database, error) {
	sc := s.script().
		Line("const out = [];").
		Line("for (const db of app.databases()) {").
		Line("  out.push({ name: db.name(), uuid: db.uuid(), path: db.path(), items: db.contents().length });").
		Line("}").
		Line("return emit({ success: true, databases: out });")

	var payload struct {
		bridge.Outcome
		Databases []Database `json:"databases"`
	}
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	return payload.Databases, nil
}
