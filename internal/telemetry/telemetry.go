// Package telemetry records gallery intents as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span names, one per applied intent.
const (
	OpAdd    = "gallery.add"
	OpSelect = "gallery.select"
	OpDelete = "gallery.delete"
	OpClear  = "gallery.clear"
	OpSeed   = "gallery.seed"
	OpLoad   = "gallery.load"
)

const tracerName = "imagegallery/gallery"

// Recorder emits spans for gallery operations. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Recorder exporting over OTLP/HTTP to endpoint.
// Returns nil if endpoint is empty (disabled).
func New(ctx context.Context, endpoint, serviceName string) (*Recorder, error) {
	if endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostOf(endpoint))}
	if !strings.HasPrefix(endpoint, "https://") {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "imagegallery"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing provider. Shutdown shuts it down.
func NewWithProvider(provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{provider: provider, tracer: provider.Tracer(tracerName)}
}

// Record emits one finished span for op. A non-nil err marks the span failed
// and sets gallery.outcome to "error"; otherwise the outcome is "ok" unless
// attrs already carry one.
func (r *Recorder) Record(ctx context.Context, op string, err error, attrs ...attribute.KeyValue) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, op)
	defer span.End()

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	hasOutcome := false
	for _, kv := range attrs {
		if kv.Key == OutcomeKey {
			hasOutcome = true
		}
	}
	if !hasOutcome || err != nil {
		attrs = append(attrs, Outcome(outcome))
	}
	span.SetAttributes(attrs...)
}

// Shutdown flushes and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}

// Attribute keys in the gallery.* namespace.
const (
	ItemIDKey  = attribute.Key("gallery.item.id")
	URLKey     = attribute.Key("gallery.item.url")
	SourceKey  = attribute.Key("gallery.source")
	CountKey   = attribute.Key("gallery.count")
	OutcomeKey = attribute.Key("gallery.outcome")
)

func ItemID(id int) attribute.KeyValue { return ItemIDKey.Int(id) }
func URL(u string) attribute.KeyValue { return URLKey.String(u) }
func Source(s string) attribute.KeyValue { return SourceKey.String(s) }
func Count(n int) attribute.KeyValue { return CountKey.Int(n) }
func Outcome(o string) attribute.KeyValue { return OutcomeKey.String(o) }

// hostOf strips a scheme and path so "http://localhost:4318/" becomes
// "localhost:4318", the form WithEndpoint expects.
func hostOf(endpoint string) string {
	if i := strings.Index(endpoint, "://"); i >= 0 {
		endpoint = endpoint[i+3:]
	}
	if i := strings.Index(endpoint, "/"); i >= 0 {
		endpoint = endpoint[:i]
	}
	return endpoint
}
