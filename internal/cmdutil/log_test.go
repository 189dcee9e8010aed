package cmdutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWarnfQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")
	Warnf(logger, true, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("quiet warning written: %q", buf.String())
	}
	Warnf(logger, false, "shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("warning missing: %q", buf.String())
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "error")
	logger.Info("not shown")
	if buf.Len() != 0 {
		t.Fatalf("info leaked at error level: %q", buf.String())
	}
}

func TestTimed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug")
	boom := errors.New("boom")
	if err := Timed(logger, "step", func() error { return boom }); err != boom {
		t.Fatalf("Timed should pass the error through, got %v", err)
	}
	if !strings.Contains(buf.String(), "step") {
		t.Fatalf("timing line missing: %q", buf.String())
	}
}
