package middleware

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestOpenTelemetryPassesResultsThrough(t *testing.T) {
	mw := OpenTelemetry(newTestMatcher(t, "git commit -m {message}"))

	result, err := mw.Resolve([]string{"git", "commit", "-m", "fix"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected a match through the traced matcher")
	}
	if got := result.Get("message"); got != "fix" {
		t.Errorf("message = %q, want \"fix\"", got)
	}
}

func TestOpenTelemetryErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	mw := OpenTelemetry(errMatcher{err: wantErr})

	if _, err := mw.Resolve([]string{"x"}); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
}

func TestOpenTelemetryResolveContext(t *testing.T) {
	mw := OpenTelemetry(
		newTestMatcher(t, "status"),
		WithTracerName("test"),
		WithIncludeArgv(true),
		WithAttributeExtractor(func(argv []string) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	result, err := mw.ResolveContext(context.Background(), []string{"status"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected a match")
	}
}

func TestOpenTelemetryDefaults(t *testing.T) {
	config := defaultOTelConfig()

	if config.TracerName != "argroute" {
		t.Errorf("TracerName = %q, want \"argroute\"", config.TracerName)
	}
	if config.IncludeArgv {
		t.Error("IncludeArgv should default to false")
	}
	if !config.IncludePattern {
		t.Error("IncludePattern should default to true")
	}
}
