package log

import (
	"bytes"
	stdlog "log"
	"strings"
	"testing"
)

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", stdlog.LstdFlags)

	l.Debug("hidden")
	if got := buf.String(); got != "" {
		t.Errorf("debug output at info level must be discarded, got: %q", got)
	}

	l.SetLevel(DebugLevel)
	l.Debug("shown")
	if got := buf.String(); !strings.Contains(got, DebugPrefix+"shown") {
		t.Errorf("debug output at debug level must be written, got: %q", got)
	}
}

func TestLoggerInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0)

	l.Infof("score %d", 100)
	if got := buf.String(); !strings.Contains(got, "score 100") {
		t.Errorf("info output missing, got: %q", got)
	}
}
