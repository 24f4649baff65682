package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warn ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", "op", "load")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "op=load") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "tada") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestSetupWritesFile(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "nested", "tada.log")

	closer, err := Setup(Options{Level: "debug", Path: path})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	log.Debug("operation started", "op", "add")
	if err := closer.Close(); err != nil {
		t.Fatalf("%+v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !strings.Contains(string(data), "operation started") {
		t.Errorf("log file content: %q", data)
	}
}

func TestSetupWithoutPath(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	closer, err := Setup(Options{})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("%+v", err)
	}
}
