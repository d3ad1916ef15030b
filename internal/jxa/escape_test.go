package jxa

import (
	"strconv"
	"strings"
	"testing"
)

func TestIsSafe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain text", "Quarterly Report", true},
		{"quotes and backslashes", `he said "hi" \ bye`, true},
		{"newline and tab", "line one\n\tline two", true},
		{"carriage return", "a\r\nb", true},
		{"unicode", "Résumé — naïve 日本語", true},
		{"null byte", "abc\x00def", false},
		{"escape char", "abc\x1bdef", false},
		{"delete char", "abc\x7fdef", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafe(tt.input); got != tt.want {
				t.Errorf("IsSafe(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Quote targets JXA string literals, whose escape rules for the
// characters we emit match Go's interpretation of a quoted string.
// strconv.Unquote therefore acts as a stand-in for the script host,
// giving a round-trip check without launching osascript.
func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`embedded "quotes"`,
		`back\slash`,
		"multi\nline\nvalue",
		"tab\tseparated",
		"windows\r\nending",
		`"); app.delete(rec); ("`,
		"unicode ünïcödé ✓",
		"",
	}

	for _, in := range inputs {
		quoted := Quote(in)
		got, err := strconv.Unquote(quoted)
		if err != nil {
			t.Errorf("Quote(%q) produced unparseable literal %s: %v", in, quoted, err)
			continue
		}
		if got != in {
			t.Errorf("round trip of %q: got %q", in, got)
		}
	}
}

func TestQuoteNeverLeaksDelimiters(t *testing.T) {
	quoted := Quote(`a"b` + "\n" + `c\d`)
	inner := quoted[1 : len(quoted)-1]
	if strings.ContainsAny(inner, "\n\r") {
		t.Errorf("raw newline survived quoting: %q", quoted)
	}
	for i := 0; i < len(inner); i++ {
		if inner[i] == '"' && (i == 0 || inner[i-1] != '\\') {
			t.Errorf("unescaped quote at %d in %q", i, quoted)
		}
	}
}

func TestQuoteLineSeparators(t *testing.T) {
	// U+2028 and U+2029 are valid in Go strings but terminate JS literals.
	quoted := Quote("a b c")
	if strings.ContainsRune(quoted, ' ') || strings.ContainsRune(quoted, ' ') {
		t.Errorf("line separator survived quoting: %q", quoted)
	}
	if !strings.Contains(quoted, `\u2028`) || !strings.Contains(quoted, `\u2029`) {
		t.Errorf("expected unicode escapes, got %q", quoted)
	}
}

func TestQuoteAll(t *testing.T) {
	got := QuoteAll([]string{"alpha", `be"ta`})
	want := `["alpha", "be\"ta"]`
	if got != want {
		t.Errorf("QuoteAll = %s, want %s", got, want)
	}

	if got := QuoteAll(nil); got != "[]" {
		t.Errorf("QuoteAll(nil) = %s, want []", got)
	}
}

func TestScalarLiterals(t *testing.T) {
	if got := Int(-42); got != "-42" {
		t.Errorf("Int(-42) = %s", got)
	}
	if got := Bool(true); got != "true" {
		t.Errorf("Bool(true) = %s", got)
	}
	if got := Bool(false); got != "false" {
		t.Errorf("Bool(false) = %s", got)
	}
}
