// Package tracing is a thin facade over OpenTelemetry so domain services can
// emit spans without depending on otel APIs throughout the codebase.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts spans around operations.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, Span)
}

// Span is a minimal span handle; End records the error, if any.
type Span interface {
	End(err error)
	SetAttributes(attrs ...attribute.KeyValue)
}

// OTel is an OpenTelemetry-backed Tracer using the global tracer provider.
type OTel struct {
	tracer trace.Tracer
}

// NewOTel creates a tracer under the given instrumentation name.
func NewOTel(name string) *OTel {
	return &OTel{tracer: otel.Tracer(name)}
}

// Start creates a new span with the given name and attributes.
func (t *OTel) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

func (s *otelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	s.span.SetAttributes(attrs...)
}

// Noop is a Tracer that records nothing; the zero dependency for tests.
type Noop struct{}

// Start returns the context unchanged and a span that does nothing.
func (Noop) Start(ctx context.Context, _ string, _ ...attribute.KeyValue) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

func (noopSpan) SetAttributes(...attribute.KeyValue) {}
