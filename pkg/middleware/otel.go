package middleware

import (
	"context"
	"sort"

	"github.com/vango-dev/folio/pkg/router"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for Folio.
const defaultTracerName = "folio"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "folio").
	TracerName string

	// IncludeQuery adds the query keys to spans.
	// Values are never recorded. Disabled by default.
	IncludeQuery bool

	// Filter determines which navigations to trace.
	// If nil, all navigations are traced.
	Filter func(rc *router.Context) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(rc *router.Context) []attribute.KeyValue

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeQuery enables recording query keys.
func WithIncludeQuery(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeQuery = include
	}
}

// WithNavigationFilter sets a filter function for navigations.
func WithNavigationFilter(filter func(rc *router.Context) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(rc *router.Context) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates middleware that records one span per navigation
// that passed the guards. The span carries the navigation id, path, matched
// pattern and parameters, and is parented to whatever span ctx holds.
//
// Middleware cannot wrap the handler, so the span marks the point of
// dispatch rather than measuring rendering.
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if config.TracerProvider != nil {
		config.tracer = config.TracerProvider.Tracer(config.TracerName)
	} else {
		config.tracer = otel.Tracer(config.TracerName)
	}

	return func(ctx context.Context, rc *router.Context) error {
		if config.Filter != nil && !config.Filter(rc) {
			return nil
		}

		_, span := config.tracer.Start(ctx, SpanName(rc),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(SpanAttributes(rc, config)...),
		)
		span.SetStatus(codes.Ok, "")
		span.End()
		return nil
	}
}

// SpanName returns the span name for a navigation.
func SpanName(rc *router.Context) string {
	pattern := rc.Pattern
	if pattern == "" {
		pattern = "/"
	}
	return "folio.navigate " + pattern
}

// SpanAttributes returns the attributes recorded for a navigation.
func SpanAttributes(rc *router.Context, config OTelConfig) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("folio.nav_id", rc.ID),
		attribute.String("folio.path", rc.Path),
		attribute.String("folio.pattern", rc.Pattern),
	}
	for _, p := range rc.Params {
		attrs = append(attrs, attribute.String("folio.param."+p.Name, p.Value))
	}
	if config.IncludeQuery && len(rc.Query) > 0 {
		keys := make([]string, 0, len(rc.Query))
		for k := range rc.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		attrs = append(attrs, attribute.StringSlice("folio.query_keys", keys))
	}
	if config.AttributeExtractor != nil {
		attrs = append(attrs, config.AttributeExtractor(rc)...)
	}
	return attrs
}
