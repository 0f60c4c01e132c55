package errors

import (
	"strings"
	"testing"

	"github.com/argroute/argroute/pkg/pattern"
)

func TestNewFromRegistry(t *testing.T) {
	e := New("P003")

	if e.Code != "P003" {
		t.Errorf("Code = %q, want P003", e.Code)
	}
	if e.Category != CategorySyntax {
		t.Errorf("Category = %q, want syntax", e.Category)
	}
	if e.Message == "" || e.Detail == "" || e.DocURL == "" {
		t.Errorf("template fields missing: %+v", e)
	}
}

func TestNewUnknownCode(t *testing.T) {
	e := New("X999")

	if e.Code != "X999" {
		t.Errorf("Code = %q, want X999", e.Code)
	}
	if e.Message != "Unknown error" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestEveryPatternKindHasACode(t *testing.T) {
	for kind, code := range parseCodes {
		if _, ok := registry[code]; !ok {
			t.Errorf("parse kind %v maps to unregistered code %q", kind, code)
		}
	}
	for kind, code := range semanticCodes {
		if _, ok := registry[code]; !ok {
			t.Errorf("semantic kind %v maps to unregistered code %q", kind, code)
		}
	}
	if len(parseCodes) != 9 {
		t.Errorf("parseCodes has %d entries, want 9", len(parseCodes))
	}
	if len(semanticCodes) != 8 {
		t.Errorf("semanticCodes has %d entries, want 8", len(semanticCodes))
	}
}

func TestFromDiagnosticsOrdering(t *testing.T) {
	// Parse errors first, then semantic, each in document order.
	_, diags := pattern.Check("run <a> {f} {f}")
	if !diags.HasErrors() {
		t.Fatal("expected diagnostics")
	}

	errs := FromDiagnostics(diags)
	if len(errs) != 2 {
		t.Fatalf("got %d coded errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Code != "P003" {
		t.Errorf("first code = %q, want P003", errs[0].Code)
	}
	if errs[1].Code != "S002" {
		t.Errorf("second code = %q, want S002", errs[1].Code)
	}
}

func TestFromParseCarriesSpanAndSuggestion(t *testing.T) {
	text := "commit <message>"
	_, diags := pattern.Check(text)

	errs := FromDiagnostics(diags)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	e := errs[0]
	if e.Pattern != text {
		t.Errorf("Pattern = %q", e.Pattern)
	}
	if e.Span == nil || e.Span.Offset != 7 || e.Span.Length != len("<message>") {
		t.Errorf("Span = %+v, want offset 7 length 9", e.Span)
	}
	if !strings.Contains(e.Suggestion, "{message}") {
		t.Errorf("Suggestion = %q, want the brace replacement", e.Suggestion)
	}
}

func TestFromErrorFansOutDiagnostics(t *testing.T) {
	_, diags := pattern.Check("run <a> ---x")
	errs := FromError(diags)
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2", len(errs))
	}

	plain := FromError(errPlain{})
	if len(plain) != 1 || plain[0].Category != CategoryPrecondition {
		t.Errorf("plain error conversion = %+v", plain)
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain failure" }

func TestFormatShowsCaretUnderSpan(t *testing.T) {
	DisableColors()
	defer EnableColors()

	_, diags := pattern.Check("commit <message>")
	out := FromDiagnostics(diags)[0].Format()

	if !strings.Contains(out, "P003") {
		t.Errorf("formatted output missing code:\n%s", out)
	}
	if !strings.Contains(out, "commit <message>") {
		t.Errorf("formatted output missing pattern line:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("^", len("<message>"))) {
		t.Errorf("formatted output missing caret run:\n%s", out)
	}
	if !strings.Contains(out, "Hint:") {
		t.Errorf("formatted output missing hint:\n%s", out)
	}
}

func TestFormatCompact(t *testing.T) {
	e := New("S002").WithSpan("cp {file} {file}", 10, 6)

	got := e.FormatCompact()
	if !strings.Contains(got, "S002") || !strings.Contains(got, "offset 10") {
		t.Errorf("FormatCompact = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	pe := &pattern.ParseError{Kind: pattern.ParseLegacyAngleSyntax}
	e := New("P003").Wrap(pe)

	if e.Unwrap() != pe {
		t.Error("Unwrap did not return the wrapped pattern error")
	}
}
