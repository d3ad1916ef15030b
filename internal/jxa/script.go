package jxa

import (
	"fmt"
	"strings"
)

// Script composes a complete JXA program: an application binding, shared
// helper routines, and an operation body wrapped in a try/catch that
// serializes any thrown error as a {success:false} JSON payload. The
// program is an IIFE whose return value osascript prints on stdout, so
// the body must end with `return emit({...})`.
type Script struct {
	app     string
	helpers []string
	body    []string
}

// NewScript creates a script bound to the named scriptable application.
func NewScript(app string) *Script {
	return &Script{app: app}
}

// Helper appends a shared routine (function definitions, consts) emitted
// before the try block. Helpers are deduplicated by exact text so that
// two call sites can both require the same fragment.
func (s *Script) Helper(src string) *Script {
	for _, h := range s.helpers {
		if h == src {
			return s
		}
	}
	s.helpers = append(s.helpers, src)
	return s
}

// Line appends a line to the operation body.
func (s *Script) Line(line string) *Script {
	s.body = append(s.body, line)
	return s
}

// Linef appends a formatted line to the operation body. Values formatted
// with %s must already be quoted by the caller.
func (s *Script) Linef(format string, args ...interface{}) *Script {
	return s.Line(fmt.Sprintf(format, args...))
}

// String renders the full program text.
func (s *Script) String() string {
	var b strings.Builder
	b.WriteString("(() => {\n")
	fmt.Fprintf(&b, "const app = Application(%s);\n", Quote(s.app))
	b.WriteString("app.includeStandardAdditions = true;\n")
	b.WriteString("const emit = (obj) => JSON.stringify(obj);\n")
	for _, h := range s.helpers {
		b.WriteString(h)
		if !strings.HasSuffix(h, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString("try {\n")
	for _, line := range s.body {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("} catch (e) {\n")
	b.WriteString("return emit({ success: false, error: String((e && e.message) || e), code: (e && e.code) || undefined });\n")
	b.WriteString("}\n")
	b.WriteString("})()")
	return b.String()
}
