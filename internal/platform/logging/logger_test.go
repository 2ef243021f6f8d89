package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLogContext_AddsTraceFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.WarnContext(ctx, "autosave failed", "user_id", "u1", "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() || fields["span_id"] != spanID.String() {
		t.Fatalf("expected trace fields, got %v", fields)
	}
	if fields["user_id"] != "u1" || fields["error"] != "boom" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestNewConsole_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, LevelInfo)
	logger.Debug("hidden")
	logger.Info("saved progress", "step", 2)
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "saved progress") || !strings.Contains(out, `"step": 2`) {
		t.Fatalf("unexpected console output: %q", out)
	}
}

func TestSetMirror_ReceivesEnabledEntries(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("dropped")
	logger.InfoContext(context.Background(), "kept", "user_id", "u1")
	logger.Warn("also kept")

	if len(got) != 2 || got[0] != "info:kept" || got[1] != "warn:also kept" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}

	SetMirror(nil)
	logger.Info("after removal")
	if len(got) != 2 {
		t.Fatalf("expected no entries after mirror removal, got %v", got)
	}
}
