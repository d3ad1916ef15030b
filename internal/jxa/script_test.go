package jxa

import (
	"strings"
	"testing"
)

func TestScriptComposition(t *testing.T) {
	s := NewScript("DEVONthink 3").
		Helper("function double(n) { return n * 2; }").
		Linef("const n = double(%s);", Int(21)).
		Line("return emit({ success: true, n: n });")

	text := s.String()

	t.Run("application binding", func(t *testing.T) {
		if !strings.Contains(text, `const app = Application("DEVONthink 3");`) {
			t.Errorf("missing application binding:\n%s", text)
		}
	})

	t.Run("helper precedes body", func(t *testing.T) {
		helperIdx := strings.Index(text, "function double")
		bodyIdx := strings.Index(text, "const n = double(21);")
		if helperIdx < 0 || bodyIdx < 0 {
			t.Fatalf("helper or body missing:\n%s", text)
		}
		if helperIdx > bodyIdx {
			t.Error("helper emitted after body")
		}
	})

	t.Run("body inside try block", func(t *testing.T) {
		tryIdx := strings.Index(text, "try {")
		bodyIdx := strings.Index(text, "const n = double(21);")
		catchIdx := strings.Index(text, "} catch (e) {")
		if tryIdx < 0 || catchIdx < 0 {
			t.Fatalf("missing try/catch:\n%s", text)
		}
		if !(tryIdx < bodyIdx && bodyIdx < catchIdx) {
			t.Error("body not inside try block")
		}
	})

	t.Run("catch emits failure payload", func(t *testing.T) {
		if !strings.Contains(text, "success: false") {
			t.Errorf("catch block does not emit failure payload:\n%s", text)
		}
	})
}

func TestScriptHelperDeduplication(t *testing.T) {
	helper := "function f() { return 1; }"
	s := NewScript("DEVONthink 3").Helper(helper).Helper(helper)
	if n := strings.Count(s.String(), helper); n != 1 {
		t.Errorf("helper emitted %d times, want 1", n)
	}
}

func TestScriptQuotesApplicationName(t *testing.T) {
	s := NewScript(`Weird "App"`)
	if !strings.Contains(s.String(), `Application("Weird \"App\"")`) {
		t.Errorf("application name not quoted:\n%s", s.String())
	}
}
