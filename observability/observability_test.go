package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("ignored", String("k", "v"))
	if _, ok := l.With(Int("n", 1)).(NopLogger); !ok {
		t.Error("With should return a NopLogger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestStdLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown", Int("regions", 3))
	l.Error("failed", Error("err", errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info entries should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN: shown regions=3") {
		t.Errorf("missing warn entry: %q", out)
	}
	if !strings.Contains(out, "ERROR: failed err=boom") {
		t.Errorf("missing error entry: %q", out)
	}
}

func TestStdLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, LevelDebug).With(String("doc", "a.pdf"))

	l.Debug("merged", Float("ratio", 0.5))

	if !strings.Contains(buf.String(), "DEBUG: merged doc=a.pdf ratio=0.5") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
