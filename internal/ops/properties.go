package ops

import (
	"context"

	"github.com/dtkit/dtk/internal/audit"
	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// Properties carries the metadata fields settable on a record. Nil
// pointers mean "leave unchanged", so a zero value is a no-op update.
type Properties struct {
	Comment *string `json:"comment,omitempty"`
	URL     *string `json:"url,omitempty"`
	Rating  *int    `json:"rating,omitempty"` // 0-5
	Label   *int    `json:"label,omitempty"`  // 0-7
	Flagged *bool   `json:"flagged,omitempty"`
	Unread  *bool   `json:"unread,omitempty"`
}

func (p Properties) validate() error {
	if p.Comment == nil && p.URL == nil && p.Rating == nil && p.Label == nil && p.Flagged == nil && p.Unread == nil {
		return &record.ValidationError{Reason: "no properties to set"}
	}
	if p.Comment != nil && !jxa.IsSafe(*p.Comment) {
		return &record.ValidationError{Field: "comment", Reason: "contains control characters"}
	}
	if p.URL != nil && !jxa.IsSafe(*p.URL) {
		return &record.ValidationError{Field: "url", Reason: "contains control characters"}
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return &record.ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if p.Label != nil && (*p.Label < 0 || *p.Label > 7) {
		return &record.ValidationError{Field: "label", Reason: "must be between 0 and 7"}
	}
	return nil
}

// UpdateResult reports which properties changed and which already held
// the requested value. Re-running the same update is harmless: the
// second call reports everything as skipped.
type UpdateResult struct {
	Record  record.Info `json:"record"`
	Applied []string    `json:"applied"`
	Skipped []string    `json:"skipped"`
}

// SetProperties resolves l and applies the non-nil fields of p.
func (s *Service) SetProperties(ctx context.Context, l record.Lookup, p Properties) (*UpdateResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Line("const applied = [];").
		Line("const skipped = [];").
		Line("function set(field, current, value, write) {").
		Line("  if (current === value) { skipped.push(field); return; }").
		Line("  write(value);").
		Line("  applied.push(field);").
		Line("}")
	if p.Comment != nil {
		sc.Linef(`set("comment", rec.comment(), %s, (v) => { rec.comment = v; });`, jxa.Quote(*p.Comment))
	}
	if p.URL != nil {
		sc.Linef(`set("url", rec.url(), %s, (v) => { rec.url = v; });`, jxa.Quote(*p.URL))
	}
	if p.Rating != nil {
		sc.Linef(`set("rating", rec.rating(), %s, (v) => { rec.rating = v; });`, jxa.Int(*p.Rating))
	}
	if p.Label != nil {
		sc.Linef(`set("label", rec.label(), %s, (v) => { rec.label = v; });`, jxa.Int(*p.Label))
	}
	if p.Flagged != nil {
		sc.Linef(`set("flagged", rec.flagged(), %s, (v) => { rec.flagged = v; });`, jxa.Bool(*p.Flagged))
	}
	if p.Unread != nil {
		sc.Linef(`set("unread", rec.unread(), %s, (v) => { rec.unread = v; });`, jxa.Bool(*p.Unread))
	}
	sc.Line("return emit({ success: true, record: recordInfo(rec), applied: applied, skipped: skipped });")

	var payload struct {
		bridge.Outcome
		UpdateResult
	}
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	if payload.Applied == nil {
		payload.Applied = []string{}
	}
	if payload.Skipped == nil {
		payload.Skipped = []string{}
	}
	_ = s.log.Log(audit.Entry{
		Operation: "set",
		UUID:      payload.UpdateResult.Record.UUID,
		Name:      payload.UpdateResult.Record.Name,
		Database:  payload.UpdateResult.Record.Database,
		Detail:    map[string]interface{}{"applied": payload.Applied, "skipped": payload.Skipped},
	})
	return &payload.UpdateResult, nil
}
