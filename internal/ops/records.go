package ops

import (
	"context"
	"fmt"

	"github.com/dtkit/dtk/internal/audit"
	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// GetRecord resolves l and returns the record's metadata.
func (s *Service) GetRecord(ctx context.Context, l record.Lookup) (*record.Info, error) {
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Line("return emit({ success: true, record: recordInfo(rec) });")

	var payload recordPayload
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	return &payload.Record, nil
}

// Content is a record's textual content plus enough metadata to cite it.
type Content struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// GetContent resolves l and returns the record's plain text. Markdown
// records return their markdown source.
func (s *Service) GetContent(ctx context.Context, l record.Lookup) (*Content, error) {
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Line("let text = rec.plainText();").
		Line(`if (rec.recordType() === "markdown") { text = rec.source(); }`).
		Line("return emit({ success: true, uuid: rec.uuid(), name: rec.name(), kind: rec.recordType(), text: text });")

	var payload struct {
		bridge.Outcome
		Content
	}
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	return &payload.Content, nil
}

// CreateParams describes a record to create.
type CreateParams struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // markdown, txt, bookmark, group
	Content     string   `json:"content,omitempty"`
	URL         string   `json:"url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Destination string   `json:"destination,omitempty"` // group location, e.g. /Projects/Q3
	Database    string   `json:"database,omitempty"`
}

var createKinds = map[string]bool{
	"markdown": true,
	"txt":      true,
	"bookmark": true,
	"group":    true,
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return &record.ValidationError{Field: "name", Reason: "required"}
	}
	if !createKinds[p.Kind] {
		return &record.ValidationError{Field: "kind", Reason: fmt.Sprintf("unsupported kind %q (markdown, txt, bookmark, group)", p.Kind)}
	}
	if p.Kind == "bookmark" && p.URL == "" {
		return &record.ValidationError{Field: "url", Reason: "required for bookmarks"}
	}
	for field, value := range map[string]string{
		"name":        p.Name,
		"content":     p.Content,
		"url":         p.URL,
		"destination": p.Destination,
		"database":    p.Database,
	} {
		if !jxa.IsSafe(value) {
			return &record.ValidationError{Field: field, Reason: "contains control characters"}
		}
	}
	for _, tag := range p.Tags {
		if !jxa.IsSafe(tag) {
			return &record.ValidationError{Field: "tags", Reason: "contains control characters"}
		}
	}
	return nil
}

// CreateRecord creates a record in the destination group, creating the
// group path as needed. An empty destination targets the database root.
func (s *Service) CreateRecord(ctx context.Context, p CreateParams) (*record.Info, error) {
	if p.Database == "" {
		p.Database = s.db
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	sc := s.script().Helper(databaseFragment).
		Linef("const db = databaseNamed(%s);", jxa.Quote(p.Database))
	if p.Destination != "" {
		sc.Linef("const dest = app.createLocation(%s, { in: db });", jxa.Quote(p.Destination))
	} else {
		sc.Line("const dest = db.root();")
	}

	sc.Linef("const spec = { name: %s, type: %s };", jxa.Quote(p.Name), jxa.Quote(p.Kind))
	if p.Content != "" {
		sc.Linef("spec.content = %s;", jxa.Quote(p.Content))
	}
	if p.URL != "" {
		sc.Linef("spec.URL = %s;", jxa.Quote(p.URL))
	}
	if len(p.Tags) > 0 {
		sc.Linef("spec.tags = %s;", jxa.QuoteAll(p.Tags))
	}
	sc.Line("const rec = app.createRecordWith(spec, { in: dest });").
		Line(`if (!rec) { throw new Error("create failed"); }`).
		Line("return emit({ success: true, record: recordInfo(rec) });")

	var payload recordPayload
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	_ = s.log.Log(audit.Entry{
		Operation: "create",
		UUID:      payload.Record.UUID,
		Name:      payload.Record.Name,
		Database:  payload.Record.Database,
		Detail:    map[string]interface{}{"kind": p.Kind, "destination": p.Destination},
	})
	return &payload.Record, nil
}

// DeleteRecord resolves l and deletes the record. The returned metadata
// is the record's state immediately before deletion.
func (s *Service) DeleteRecord(ctx context.Context, l record.Lookup) (*record.Info, error) {
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Line("const info = recordInfo(rec);").
		Line("if (!app.delete({ record: rec })) {").
		Line(`  throw new Error("delete failed");`).
		Line("}").
		Line("return emit({ success: true, record: info });")

	var payload recordPayload
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	_ = s.log.Log(audit.Entry{
		Operation: "delete",
		UUID:      payload.Record.UUID,
		Name:      payload.Record.Name,
		Database:  payload.Record.Database,
		Target:    l.String(),
	})
	return &payload.Record, nil
}

// transfer implements move, duplicate and replicate, which differ only
// in the application verb.
func (s *Service) transfer(ctx context.Context, verb string, l, dest record.Lookup) (*record.Info, error) {
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}
	dest, err = s.resolve(dest)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Linef("const dest = getRecord(%s);", record.OptionsLiteral(dest)).
		Linef("const moved = app.%s({ record: rec, to: dest });", verb).
		Linef(`if (!moved) { throw new Error("%s failed"); }`, verb).
		Line("return emit({ success: true, record: recordInfo(moved) });")

	var payload recordPayload
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	_ = s.log.Log(audit.Entry{
		Operation: verb,
		UUID:      payload.Record.UUID,
		Name:      payload.Record.Name,
		Database:  payload.Record.Database,
		Target:    dest.String(),
	})
	return &payload.Record, nil
}

// MoveRecord moves the record to the destination group.
func (s *Service) MoveRecord(ctx context.Context, l, dest record.Lookup) (*record.Info, error) {
	return s.transfer(ctx, "move", l, dest)
}

// DuplicateRecord copies the record into the destination group, which
// may live in another database.
func (s *Service) DuplicateRecord(ctx context.Context, l, dest record.Lookup) (*record.Info, error) {
	return s.transfer(ctx, "duplicate", l, dest)
}

// ReplicateRecord replicates the record into the destination group.
// Replicas only exist within one database; crossing databases is
// rejected by the application and surfaces as a script error.
func (s *Service) ReplicateRecord(ctx context.Context, l, dest record.Lookup) (*record.Info, error) {
	return s.transfer(ctx, "replicate", l, dest)
}

// RenameRecord resolves l and sets its name.
func (s *Service) RenameRecord(ctx context.Context, l record.Lookup, name string) (*record.Info, error) {
	if name == "" {
		return nil, &record.ValidationError{Field: "name", Reason: "required"}
	}
	if !jxa.IsSafe(name) {
		return nil, &record.ValidationError{Field: "name", Reason: "contains control characters"}
	}
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Linef("rec.name = %s;", jxa.Quote(name)).
		Line("return emit({ success: true, record: recordInfo(rec) });")

	var payload recordPayload
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	_ = s.log.Log(audit.Entry{
		Operation: "rename",
		UUID:      payload.Record.UUID,
		Name:      name,
		Database:  payload.Record.Database,
		Target:    l.String(),
	})
	return &payload.Record, nil
}
