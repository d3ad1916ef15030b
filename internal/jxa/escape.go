// Package jxa builds JavaScript for Automation (JXA) source text.
//
// Scripts are assembled by string composition, so every caller-supplied
// value must cross into script text through exactly one of the quoting
// helpers in this file. Quoting twice corrupts the value; quoting zero
// times is an injection hole.
package jxa

import (
	"fmt"
	"strconv"
	"strings"
)

// IsSafe reports whether s can be embedded in a generated script at all.
// Tabs, newlines and carriage returns are fine (Quote escapes them); any
// other control character is rejected so that bad input fails locally
// instead of producing a garbled script.
func IsSafe(s string) bool {
	for _, r := range s {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
		if r == 0x7f {
			return false
		}
	}
	return true
}

// Quote renders s as a double-quoted JXA string literal. The JXA
// interpreter reproduces the original value exactly.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f || r == ' ' || r == ' ' {
				// U+2028 and U+2029 terminate JS string literals.
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteAll renders a string slice as a JXA array literal.
func QuoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Int renders n as a JXA numeric literal.
func Int(n int) string {
	return strconv.Itoa(n)
}

// Bool renders b as a JXA boolean literal.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
