package arc

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLog_ForwardsToHost(t *testing.T) {
	h := newFakeHost()
	l := NewLog(h)

	l.Info("spawned %d enemies", 3)
	l.Warn(42)
	l.Error(nil)
	l.Debug(1, 2)

	want := []struct {
		level LogLevel
		msg   string
	}{
		{LogInfo, "spawned 3 enemies"},
		{LogWarn, "42"},
		{LogError, "null"},
		{LogDebug, "1 2"},
	}
	if len(h.logs) != len(want) {
		t.Fatalf("got %d host logs, want %d", len(h.logs), len(want))
	}
	for i, w := range want {
		got := h.logs[i]
		if got.level != w.level || got.message != w.msg {
			t.Errorf("log %d = [%v] %q, want [%v] %q", i, got.level, got.message, w.level, w.msg)
		}
	}
}

func TestLog_CallSite(t *testing.T) {
	h := newFakeHost()
	NewLog(h).Info("here")

	got := h.logs[0]
	if got.file != "log_test.go" {
		t.Errorf("file = %q, want log_test.go", got.file)
	}
	if got.member != "TestLog_CallSite" {
		t.Errorf("member = %q, want TestLog_CallSite", got.member)
	}
	if got.line <= 0 {
		t.Errorf("line = %d", got.line)
	}
}

func TestLog_ZapLevels(t *testing.T) {
	logs := observeLogs(t)
	l := NewLog(nil)

	l.Trace("t")
	l.Info("i")
	l.Critical("c")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d zap entries, want 3", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].ContextMap()["trace"] != true {
		t.Errorf("trace entry = %v %v", entries[0].Level, entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.InfoLevel || entries[1].Message != "i" {
		t.Errorf("info entry = %v %q", entries[1].Level, entries[1].Message)
	}
	if entries[2].Level != zapcore.ErrorLevel || entries[2].ContextMap()["critical"] != true {
		t.Errorf("critical entry = %v %v", entries[2].Level, entries[2].ContextMap())
	}
	if entries[1].ContextMap()["member"] != "TestLog_ZapLevels" {
		t.Errorf("member field = %v", entries[1].ContextMap()["member"])
	}
}

func TestLogLevelString(t *testing.T) {
	tests := map[LogLevel]string{
		LogTrace:    "trace",
		LogDebug:    "debug",
		LogInfo:     "info",
		LogWarn:     "warn",
		LogError:    "error",
		LogCritical: "critical",
		LogLevel(3): "LogLevel(3)",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", uint8(level), got, want)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	// The no-op logger accepts writes.
	NewLog(nil).Info("discarded")
}
