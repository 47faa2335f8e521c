package paint

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDefaultLoggerDiscards(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}

	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("shapes", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() should stay a nopHandler")
	}
	if _, ok := h.WithGroup("scene").(nopHandler); !ok {
		t.Error("WithGroup() should stay a nopHandler")
	}
}

// captureLogs installs a debug text logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestSceneLogsHistoryChanges(t *testing.T) {
	buf := captureLogs(t)

	s := NewScene(&fakeSink{}, WithMode(Circle), WithColor(Red))
	s.BeginShape(Pt(10, 10))
	s.ExtendShape(Pt(20, 10))
	s.CommitShape()
	s.Undo()

	out := buf.String()
	for _, want := range []string{
		"paint: begin shape",
		"kind=Circle",
		"paint: commit shape",
		"shape=Circle[Red](10,10)-(20,10)",
		"paint: undo",
		"shapes=0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilSilences(t *testing.T) {
	buf := captureLogs(t)
	SetLogger(nil)

	s := NewScene(&fakeSink{})
	s.BeginShape(Pt(0, 0))
	s.CommitShape()

	if buf.Len() != 0 {
		t.Errorf("SetLogger(nil) still produced output: %s", buf.String())
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should install a disabled logger")
	}
	if Logger() != discard {
		t.Error("Logger() after SetLogger(nil) should be the discard logger")
	}
}

func TestLoggerConcurrentSwap(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			if Logger() == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			Logger().Debug("paint: concurrent read")
		})
		wg.Go(func() {
			SetLogger(slog.Default())
			SetLogger(nil)
		})
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledDebug(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("paint: commit shape", "shapes", 1)
	}
}
