package ops

import (
	"context"

	"github.com/dtkit/dtk/internal/audit"
	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// TagResult reports a record's tag set after a tag mutation.
type TagResult struct {
	UUID string   `json:"uuid"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

func validateTags(tags []string) error {
	if len(tags) == 0 {
		return &record.ValidationError{Field: "tags", Reason: "at least one tag required"}
	}
	for _, tag := range tags {
		if tag == "" {
			return &record.ValidationError{Field: "tags", Reason: "empty tag"}
		}
		if !jxa.IsSafe(tag) {
			return &record.ValidationError{Field: "tags", Reason: "contains control characters"}
		}
	}
	return nil
}

func (s *Service) mutateTags(ctx context.Context, op string, l record.Lookup, tags []string, body []string) (*TagResult, error) {
	if err := validateTags(tags); err != nil {
		return nil, err
	}
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Linef("const requested = %s;", jxa.QuoteAll(tags)).
		Line("const current = rec.tags();")
	for _, line := range body {
		sc.Line(line)
	}
	sc.Line("return emit({ success: true, uuid: rec.uuid(), name: rec.name(), tags: rec.tags() });")

	var payload struct {
		bridge.Outcome
		TagResult
	}
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	if payload.TagResult.Tags == nil {
		payload.TagResult.Tags = []string{}
	}
	_ = s.log.Log(audit.Entry{
		Operation: op,
		UUID:      payload.TagResult.UUID,
		Name:      payload.TagResult.Name,
		Detail:    map[string]interface{}{"tags": tags},
	})
	return &payload.TagResult, nil
}

// AddTags adds tags to the record, preserving existing ones. Adding a
// tag the record already carries is a no-op.
func (s *Service) AddTags(ctx context.Context, l record.Lookup, tags []string) (*TagResult, error) {
	return s.mutateTags(ctx, "tag-add", l, tags, []string{
		"const merged = current.slice();",
		"for (const tag of requested) {",
		"  if (!merged.includes(tag)) { merged.push(tag); }",
		"}",
		"rec.tags = merged;",
	})
}

// RemoveTags removes tags from the record. Removing an absent tag is a
// no-op.
func (s *Service) RemoveTags(ctx context.Context, l record.Lookup, tags []string) (*TagResult, error) {
	return s.mutateTags(ctx, "tag-remove", l, tags, []string{
		"rec.tags = current.filter((tag) => !requested.includes(tag));",
	})
}
