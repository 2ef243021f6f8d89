package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("skillpath-onboarding/internal/interfaces/httpapi")

// Handlers for liveness and API docs are polled often and carry no
// onboarding work, so they never get their own span.
var untracedHandlers = map[string]struct{}{
	handlerSpanPrefix + "Healthz":   {},
	handlerSpanPrefix + "OpenAPI":   {},
	handlerSpanPrefix + "SwaggerUI": {},
}

// startSpan opens a child span for onboarding and job handlers. It returns
// the parent span unchanged when the request is not traced, and for
// middleware or response helpers, which are already covered by otelhttp.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !tracesHandler(name) {
		return ctx, noopSpan{parent}
	}
	return apiTracer.Start(ctx, name)
}

func tracesHandler(name string) bool {
	if !strings.HasPrefix(name, handlerSpanPrefix) {
		return false
	}
	_, skip := untracedHandlers[name]
	return !skip
}

// noopSpan hands callers the parent span but ignores End so a helper can
// defer span.End() without closing its caller's span.
type noopSpan struct {
	trace.Span
}

func (noopSpan) End(...trace.SpanEndOption) {}
