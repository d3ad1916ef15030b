package ops

import (
	"context"

	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// ClassifyProposal is one AI-suggested filing destination for a record.
type ClassifyProposal struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Database string  `json:"database"`
	UUID     string  `json:"uuid,omitempty"`
	Score    float64 `json:"score,omitempty"`
}

// Classify asks the application's classifier for suggested destination
// groups for the record.
func (s *Service) Classify(ctx context.Context, l record.Lookup, limit int) ([]ClassifyProposal, error) {
	l, err := s.resolve(l)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	sc := s.script().
		Linef("const rec = getRecord(%s);", record.OptionsLiteral(l)).
		Line("const proposals = app.classify({ record: rec }) || [];").
		Linef("const limit = %s;", jxa.Int(limit)).
		Line("const out = [];").
		Line("for (const p of proposals) {").
		Line("  if (out.length >= limit) { break; }").
		Line("  let score = 0;").
		Line("  try { score = p.score(); } catch (_) {}").
		Line("  out.push({ name: p.name(), location: p.location(), database: p.database().name(), uuid: p.uuid(), score: score });").
		Line("}").
		Line("return emit({ success: true, proposals: out });")

	var payload struct {
		bridge.Outcome
		Proposals []ClassifyProposal `json:"proposals"`
	}
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	if payload.Proposals == nil {
		payload.Proposals = []ClassifyProposal{}
	}
	return payload.Proposals, nil
}
