package herofx

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger
	SetLogger(log.New(&buf, "", 0))
	t.Cleanup(func() { logger = prev })
	return &buf
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureLog(t)
	a := &App{}
	a.debugLog(debugStats{hitCells: 3})
	if buf.Len() != 0 {
		t.Errorf("debugLog wrote %q with debug off", buf.String())
	}
}

func TestDebugLogFields(t *testing.T) {
	buf := captureLog(t)
	a := &App{debug: true}
	a.debugLog(debugStats{
		updateTime: 1500,
		drawTime:   2000,
		hitCells:   12,
		totalCells: 400,
		progress:   0.25,
		navLocked:  true,
	})
	out := buf.String()
	for _, want := range []string{"cells: 12/400 hit", "progress: 0.250", "nav locked: true", "update: 1.5µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug line %q missing %q", out, want)
		}
	}
}

func TestSetLoggerNilDiscards(t *testing.T) {
	prev := logger
	defer func() { logger = prev }()
	SetLogger(nil)
	logger.Printf("dropped")
	if logger.Writer() == nil {
		t.Error("logger should still have a writer")
	}
}
