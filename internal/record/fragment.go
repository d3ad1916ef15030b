package record

import (
	"strings"

	"github.com/dtkit/dtk/internal/jxa"
)

// resolveFragment is the reusable script routine behind every operation
// that targets a single record. Strategy order is fixed: uuid, then
// database+id, then path, then exact name. The first strategy whose
// fields are populated decides the outcome; nothing falls through after
// a definitive match. A database name that matches no open database
// yields an empty scope and therefore "not found", never a script error.
//
// Failures are thrown with a machine-readable code ("not_found",
// "ambiguous") which the script wrapper copies into the JSON payload.
const resolveFragment = `function resolveFail(code, message) {
  const e = new Error(message);
  e.code = code;
  return e;
}
function targetDatabases(name) {
  const dbs = app.databases();
  if (!name) { return dbs; }
  const scoped = [];
  for (const db of dbs) {
    if (db.name() === name) { scoped.push(db); }
  }
  return scoped;
}
function getRecord(opts) {
  if (opts.uuid) {
    let rec = null;
    try { rec = app.getRecordWithUuid(opts.uuid); } catch (_) { rec = null; }
    if (rec) { return rec; }
    throw resolveFail("not_found", "record not found: uuid " + opts.uuid);
  }
  if (opts.database && opts.id) {
    for (const db of targetDatabases(opts.database)) {
      const matches = db.contents.whose({ id: opts.id })();
      if (matches.length > 0) { return matches[0]; }
    }
    throw resolveFail("not_found", "record not found: id " + opts.id + " in database " + opts.database);
  }
  if (opts.path) {
    for (const db of targetDatabases(opts.database)) {
      let rec = null;
      try { rec = app.getRecordAt(opts.path, { in: db.root() }); } catch (_) { rec = null; }
      if (rec) { return rec; }
    }
    throw resolveFail("not_found", "record not found: path " + opts.path);
  }
  if (opts.name) {
    const matches = [];
    for (const db of targetDatabases(opts.database)) {
      const hits = app.search("name==" + JSON.stringify(opts.name), { in: db.root() });
      for (const hit of hits) {
        if (hit.name() === opts.name) { matches.push(hit); }
      }
    }
    if (matches.length === 1) { return matches[0]; }
    if (matches.length > 1) {
      throw resolveFail("ambiguous", "ambiguous: " + matches.length + " records named " + JSON.stringify(opts.name));
    }
    throw resolveFail("not_found", "record not found: name " + opts.name);
  }
  throw resolveFail("not_found", "record not found");
}`

// infoFragment serializes a record handle into the flat metadata object
// decoded by Info.
const infoFragment = `function recordInfo(rec) {
  return {
    uuid: rec.uuid(),
    id: rec.id(),
    name: rec.name(),
    database: rec.database().name(),
    location: rec.location(),
    path: rec.path(),
    kind: rec.recordType(),
    url: rec.url(),
    tags: rec.tags(),
    comment: rec.comment(),
    size: rec.size(),
    created: rec.creationDate() ? rec.creationDate().toISOString() : null,
    modified: rec.modificationDate() ? rec.modificationDate().toISOString() : null,
    rating: rec.rating(),
    label: rec.label(),
    flagged: rec.flagged(),
    unread: rec.unread()
  };
}`

// Fragment returns the resolution routine for inclusion via Script.Helper.
func Fragment() string {
	return resolveFragment
}

// InfoFragment returns the metadata serializer for inclusion via Script.Helper.
func InfoFragment() string {
	return infoFragment
}

// OptionsLiteral renders l as the JXA object literal consumed by
// getRecord. Every string field passes through jxa.Quote here and
// nowhere else.
func OptionsLiteral(l Lookup) string {
	var fields []string
	if l.UUID != "" {
		fields = append(fields, "uuid: "+jxa.Quote(l.UUID))
	}
	if l.ID != 0 {
		fields = append(fields, "id: "+jxa.Int(l.ID))
	}
	if l.Path != "" {
		fields = append(fields, "path: "+jxa.Quote(l.Path))
	}
	if l.Name != "" {
		fields = append(fields, "name: "+jxa.Quote(l.Name))
	}
	if l.Database != "" {
		fields = append(fields, "database: "+jxa.Quote(l.Database))
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

// Info is the flat metadata shape produced by recordInfo.
type Info struct {
	UUID     string   `json:"uuid"`
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Database string   `json:"database"`
	Location string   `json:"location"`
	Path     string   `json:"path"`
	Kind     string   `json:"kind"`
	URL      string   `json:"url,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Comment  string   `json:"comment,omitempty"`
	Size     int64    `json:"size"`
	Created  string   `json:"created,omitempty"`
	Modified string   `json:"modified,omitempty"`
	Rating   int      `json:"rating"`
	Label    int      `json:"label"`
	Flagged  bool     `json:"flagged"`
	Unread   bool     `json:"unread"`
}
