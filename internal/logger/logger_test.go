package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestVerboseGating(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(false)
	Info("hidden %d", 1)
	Debug("hidden too")
	Section("hidden stage")
	if buf.Len() != 0 {
		t.Errorf("quiet mode produced output: %q", buf.String())
	}

	SetVerbose(true)
	Info("extracted %d tokens", 5)
	out := buf.String()
	if !strings.Contains(out, "[INFO] extracted 5 tokens") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWarnAlwaysShown(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("skip malformed record %s", "bad.json")
	if !strings.Contains(buf.String(), "[WARN] skip malformed record bad.json") {
		t.Errorf("warning suppressed: %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Extract")
	if !strings.Contains(buf.String(), "=== Extract ===") {
		t.Errorf("unexpected section output: %q", buf.String())
	}
}
