package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestLogger(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, logs := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	want := []struct {
		msg string
		key string
	}{
		{"dbg", "a"},
		{"inf", "b"},
		{"wrn", "c"},
		{"err", "d"},
	}
	for i, w := range want {
		if entries[i].Message != w.msg {
			t.Fatalf("entry %d: expected msg %q, got %q", i, w.msg, entries[i].Message)
		}
		fields := entries[i].ContextMap()
		if _, ok := fields[w.key]; !ok {
			t.Fatalf("entry %d: expected field %q in %v", i, w.key, fields)
		}
	}
}

func TestZapLogger_With_AddsAttributes(t *testing.T) {
	log, logs := newTestLogger(t)
	ctx := context.Background()

	child := log.With("component", "sync")
	child.Info(ctx, "hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["component"]; got != "sync" {
		t.Fatalf("expected component=sync, got %v", got)
	}
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	log := NewNop()
	log.Info(context.Background(), "should not panic", "k", "v")
}
