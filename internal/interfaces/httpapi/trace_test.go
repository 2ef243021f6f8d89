package httpapi

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestTracesHandler(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "onboarding handler", in: "httpapi.Handler.SaveOnboardingProgress", want: true},
		{name: "job handler", in: "httpapi.Handler.RunWarmLearningPathsJob", want: true},
		{name: "health handler", in: "httpapi.Handler.Healthz", want: false},
		{name: "docs handler", in: "httpapi.Handler.SwaggerUI", want: false},
		{name: "middleware", in: "httpapi.RequestLogging", want: false},
		{name: "response helper", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tracesHandler(tt.in); got != tt.want {
				t.Fatalf("tracesHandler(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_WithoutParentIsNotRecorded(t *testing.T) {
	ctx, span := startSpan(context.Background(), "httpapi.Handler.GetLearningPath")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Fatalf("expected no span for an untraced request")
	}
	if trace.SpanFromContext(ctx).SpanContext().IsValid() {
		t.Fatalf("expected context to stay untraced")
	}
}

func TestStartSpan_HelperKeepsParentOpen(t *testing.T) {
	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, parent := provider.Tracer("test").Start(context.Background(), "request")
	defer parent.End()

	helperCtx, span := startSpan(ctx, "httpapi.writeJSON")
	span.End()

	if span.SpanContext().SpanID() != parent.SpanContext().SpanID() {
		t.Fatalf("expected helper to reuse the request span")
	}
	if helperCtx != ctx {
		t.Fatalf("expected helper context to be unchanged")
	}
	if !parent.IsRecording() {
		t.Fatalf("expected request span to stay open after helper End")
	}
}
