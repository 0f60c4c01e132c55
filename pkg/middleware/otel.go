package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/argroute/argroute/pkg/router"
)

// Default tracer name for argroute applications.
const defaultTracerName = "argroute"

// OTelConfig configures the OpenTelemetry resolver instrumentation.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "argroute").
	TracerName string

	// IncludeArgv includes the full argument vector in spans.
	// May contain sensitive information - disabled by default.
	IncludeArgv bool

	// IncludePattern includes the matched pattern in spans.
	// Enabled by default.
	IncludePattern bool

	// AttributeExtractor extracts custom attributes from the argv.
	// Called for each traced resolution.
	AttributeExtractor func(argv []string) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry resolver instrumentation.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeArgv enables including the argument vector in spans.
func WithIncludeArgv(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeArgv = include
	}
}

// WithIncludePattern enables/disables including the matched pattern in spans.
func WithIncludePattern(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludePattern = include
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(argv []string) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:     defaultTracerName,
		IncludeArgv:    false,
		IncludePattern: true,
	}
}

// TracedMatcher wraps a matcher so each resolution runs inside a span.
type TracedMatcher struct {
	next   router.Matcher
	config OTelConfig
}

// OpenTelemetry creates a traced matcher around next.
//
// Each resolution produces an "argroute.resolve" span carrying the argument
// count, the outcome, the number of candidates tried, and (when enabled) the
// matched pattern. The tracer comes from the global OpenTelemetry tracer
// provider; configure it in main() before resolving:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//
//	m := middleware.OpenTelemetry(router.NewResolver(c))
//	result, err := m.ResolveContext(ctx, argv)
func OpenTelemetry(next router.Matcher, opts ...OTelOption) *TracedMatcher {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return &TracedMatcher{next: next, config: config}
}

var _ router.Matcher = (*TracedMatcher)(nil)

// Resolve implements router.Matcher with a background trace context.
func (t *TracedMatcher) Resolve(argv []string) (*router.Result, error) {
	return t.ResolveContext(context.Background(), argv)
}

// ResolveContext resolves inside a span parented on ctx.
func (t *TracedMatcher) ResolveContext(ctx context.Context, argv []string) (*router.Result, error) {
	attrs := []attribute.KeyValue{
		attribute.Int("argroute.argv_count", len(argv)),
	}
	if t.config.IncludeArgv {
		attrs = append(attrs, attribute.StringSlice("argroute.argv", argv))
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(argv)...)
	}

	_, span := t.config.tracer.Start(
		ctx,
		"argroute.resolve",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(time.Now()),
	)
	defer span.End()

	result, err := t.next.Resolve(argv)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	span.SetAttributes(
		attribute.Bool("argroute.matched", result.Matched),
		attribute.Int("argroute.candidates", result.Candidates),
	)
	if result.Matched && t.config.IncludePattern {
		span.SetAttributes(attribute.String("argroute.pattern", result.Endpoint.Pattern))
	}

	return result, nil
}
