package middleware

import (
	"context"
	"testing"

	"github.com/vango-dev/folio/pkg/router"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordedSpan struct {
	name  string
	attrs []attribute.KeyValue
}

type recordingTracer struct {
	embedded.Tracer
	spans []recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	t.spans = append(t.spans, recordedSpan{name: name, attrs: cfg.Attributes()})
	return noop.NewTracerProvider().Tracer("").Start(ctx, name)
}

type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return p.tracer
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func sampleContext() *router.Context {
	return &router.Context{
		ID:       "nav-1",
		Path:     "/research/42",
		FullPath: "/research/42?tab=notes",
		Pattern:  "/research/:id",
		Params:   router.Params{{Name: "id", Value: "42"}},
		Query:    map[string]string{"tab": "notes", "lang": "en"},
	}
}

func TestOpenTelemetryRecordsSpan(t *testing.T) {
	tracer := &recordingTracer{}
	mw := OpenTelemetry(
		WithTracerProvider(&recordingProvider{tracer: tracer}),
		WithIncludeQuery(true),
		WithAttributeExtractor(func(*router.Context) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	if err := mw(context.Background(), sampleContext()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tracer.spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(tracer.spans))
	}
	span := tracer.spans[0]
	if span.name != "folio.navigate /research/:id" {
		t.Errorf("span name = %q", span.name)
	}

	checks := map[string]string{
		"folio.nav_id":   "nav-1",
		"folio.path":     "/research/42",
		"folio.pattern":  "/research/:id",
		"folio.param.id": "42",
		"test.attr":      "ok",
	}
	for key, want := range checks {
		v, ok := attrValue(span.attrs, key)
		if !ok || v.AsString() != want {
			t.Errorf("attr %s = %v (present=%v), want %q", key, v.Emit(), ok, want)
		}
	}

	keys, ok := attrValue(span.attrs, "folio.query_keys")
	if !ok {
		t.Fatal("folio.query_keys missing")
	}
	if got := keys.AsStringSlice(); len(got) != 2 || got[0] != "lang" || got[1] != "tab" {
		t.Errorf("folio.query_keys = %v, want [lang tab]", got)
	}
}

func TestOpenTelemetryOmitsQueryByDefault(t *testing.T) {
	tracer := &recordingTracer{}
	mw := OpenTelemetry(WithTracerProvider(&recordingProvider{tracer: tracer}))

	_ = mw(context.Background(), sampleContext())

	if _, ok := attrValue(tracer.spans[0].attrs, "folio.query_keys"); ok {
		t.Error("query keys recorded without WithIncludeQuery")
	}
}

func TestOpenTelemetryFilterSkipsTracing(t *testing.T) {
	tracer := &recordingTracer{}
	mw := OpenTelemetry(
		WithTracerProvider(&recordingProvider{tracer: tracer}),
		WithNavigationFilter(func(rc *router.Context) bool { return rc.Path != "/research/42" }),
	)

	_ = mw(context.Background(), sampleContext())

	if len(tracer.spans) != 0 {
		t.Errorf("filtered navigation traced: %v", tracer.spans)
	}
}

func TestOpenTelemetryGlobalProvider(t *testing.T) {
	mw := OpenTelemetry(WithTracerName("folio-test"))
	if err := mw(context.Background(), &router.Context{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpanNameRoot(t *testing.T) {
	if got := SpanName(&router.Context{}); got != "folio.navigate /" {
		t.Errorf("SpanName() = %q", got)
	}
}
