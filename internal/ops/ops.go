// Package ops implements the high-level operations exposed by the CLI
// and the MCP server. Each operation validates its parameters, composes
// a script from the shared resolution fragments, runs it through the
// bridge in one atomic invocation, and returns a typed result.
package ops

import (
	"time"

	"github.com/dtkit/dtk/internal/audit"
	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/jxa"
	"github.com/dtkit/dtk/internal/record"
)

// Options configures a Service.
type Options struct {
	// Application is the scriptable application name.
	Application string

	// Runner overrides the osascript runner (tests inject a fake).
	Runner bridge.Runner

	// Timeout bounds a single host invocation.
	Timeout time.Duration

	// DefaultDatabase scopes lookups that name no database themselves.
	DefaultDatabase string

	// Audit receives entries for mutating operations; nil disables.
	Audit *audit.Logger
}

// Service exposes the operation catalog. It holds no record state:
// every call is an independent round trip to the application.
type Service struct {
	br  *bridge.Bridge
	app string
	db  string
	log *audit.Logger
}

// New creates a Service.
func New(opts Options) *Service {
	app := opts.Application
	if app == "" {
		app = "DEVONthink 3"
	}
	log := opts.Audit
	if log == nil {
		log = audit.New("", false)
	}
	return &Service{
		br:  bridge.New(opts.Runner, opts.Timeout),
		app: app,
		db:  opts.DefaultDatabase,
		log: log,
	}
}

// databaseFragment resolves a database by name for operations that
// create inside a database rather than target an existing record. An
// unknown name here is an error: creating into a database that is not
// open cannot degrade to "no match".
const databaseFragment = `function databaseNamed(name) {
  if (!name) {
    const dbs = app.databases();
    if (dbs.length === 0) { throw resolveFail("not_found", "no database open"); }
    return dbs[0];
  }
  for (const db of app.databases()) {
    if (db.name() === name) { return db; }
  }
  throw resolveFail("not_found", "database not open: " + name);
}`

// script starts a new script with the resolution helpers loaded.
func (s *Service) script() *jxa.Script {
	return jxa.NewScript(s.app).
		Helper(record.Fragment()).
		Helper(record.InfoFragment())
}

// scoped applies the service's default database to a lookup that names
// none. UUID lookups ignore the scope by construction.
func (s *Service) scoped(l record.Lookup) record.Lookup {
	if l.Database == "" {
		l.Database = s.db
	}
	return l
}

// resolve validates l and returns it with the default scope applied.
func (s *Service) resolve(l record.Lookup) (record.Lookup, error) {
	l = s.scoped(l)
	if err := l.Validate(); err != nil {
		return record.Lookup{}, err
	}
	return l, nil
}

// recordPayload is the common single-record response shape.
type recordPayload struct {
	bridge.Outcome
	Record record.Info `json:"record"`
}
