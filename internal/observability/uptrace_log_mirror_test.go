package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func TestIsSystemRequestLog(t *testing.T) {
	if !isSystemRequestLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if isSystemRequestLog("http request", []any{"path", "/v1/onboarding/status"}) {
		t.Fatalf("did not expect onboarding request log to be skipped")
	}
	if isSystemRequestLog("onboarding autosaved", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"user_id", "user-1", "step", 2, "job_token", "secret", "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "user_id" || attrs[0].Value.AsString() != "user-1" {
		t.Fatalf("unexpected user_id attribute")
	}
	if attrs[1].Key != "step" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected step attribute")
	}
	if attrs[2].Value.AsString() != redactedValue {
		t.Fatalf("expected token to be redacted, got %q", attrs[2].Value.AsString())
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestToOTelLogValue(t *testing.T) {
	if v := toOTelLogValue([]string{"go", "rust"}); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("expected slice value, got %s", v.Kind())
	}
	if v := toOTelLogValue(errors.New("boom")); v.AsString() != "boom" {
		t.Fatalf("unexpected error value: %q", v.AsString())
	}
	if v := toOTelLogValue(1500 * time.Millisecond); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value: %q", v.AsString())
	}
	if v := toOTelLogValue(struct{ A int }{A: 1}); v.AsString() != "{1}" {
		t.Fatalf("unexpected fallback value: %q", v.AsString())
	}
}
