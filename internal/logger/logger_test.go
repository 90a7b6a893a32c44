package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"   nonsense   ", zerolog.WarnLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("COMPOSEDETECT_LOG_LEVEL", "DEBUG")
	t.Setenv("COMPOSEDETECT_LOG_FORMAT", "json")
	opt := FromEnv()
	if opt.Level != "debug" || opt.Format != "json" || opt.WithCaller {
		t.Fatalf("unexpected options %+v", opt)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "json", Writer: &buf})
	l.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered, got %q", buf.String())
	}
	l.Warn().Str("k", "v").Msg("shown")
	if !strings.Contains(buf.String(), `"message":"shown"`) || !strings.Contains(buf.String(), `"k":"v"`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWithRunAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	l := WithRun(New(Options{Level: "info", Format: "json", Writer: &buf}))
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"run_id":"`) {
		t.Fatalf("expected run_id field, got %q", buf.String())
	}
}
