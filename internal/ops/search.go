package ops

import (
	"context"

	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// DefaultSearchLimit caps search results when the caller sets none.
const DefaultSearchLimit = 25

// SearchParams describes a free-text search. This is deliberately a
// separate surface from record resolution: search supports the
// application's full query syntax while resolution is exact-match only.
type SearchParams struct {
	Query    string `json:"query"`
	Database string `json:"database,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// SearchResult carries the capped result window plus the total hit count.
type SearchResult struct {
	Total   int           `json:"total"`
	Records []record.Info `json:"records"`
}

// Search runs a free-text query, optionally scoped to one database.
func (s *Service) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	if p.Query == "" {
		return nil, &record.ValidationError{Field: "query", Reason: "required"}
	}
	if !jxa.IsSafe(p.Query) {
		return nil, &record.ValidationError{Field: "query", Reason: "contains control characters"}
	}
	if p.Database == "" {
		p.Database = s.db
	}
	if !jxa.IsSafe(p.Database) {
		return nil, &record.ValidationError{Field: "database", Reason: "contains control characters"}
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	sc := s.script()
	if p.Database != "" {
		sc.Helper(databaseFragment)
		sc.Linef("const hits = app.search(%s, { in: databaseNamed(%s).root() });", jxa.Quote(p.Query), jxa.Quote(p.Database))
	} else {
		sc.Linef("const hits = app.search(%s);", jxa.Quote(p.Query))
	}
	sc.Linef("const limit = %s;", jxa.Int(limit)).
		Line("const out = [];").
		Line("for (const hit of hits) {").
		Line("  if (out.length >= limit) { break; }").
		Line("  out.push(recordInfo(hit));").
		Line("}").
		Line("return emit({ success: true, total: hits.length, records: out });")

	var payload struct {
		bridge.Outcome
		SearchResult
	}
	if err := s.br.Execute(ctx, sc.String(), &payload); err != nil {
		return nil, err
	}
	if payload.SearchResult.Records == nil {
		payload.SearchResult.Records = []record.Info{}
	}
	return &payload.SearchResult, nil
}
