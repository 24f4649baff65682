package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{5, 10, 10, "█████░░░░░  50%"},
		{10, 10, 10, "██████████ 100%"},
		{3, 10, 1, "█░░░░  30%"},
	}

	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d): got %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("mono")
	if got := Current(); got.Name != "mono" || got.BoxChecked != "[x]" {
		t.Errorf("mono theme: got %+v", got.Name)
	}
	SetTheme("neon")
	if got := Current(); got.Name != "neon" || got.BoxChecked != "◼" {
		t.Errorf("neon theme: got %q", got.Name)
	}
	SetTheme("unknown")
	if got := Current(); got.Name != "classic" {
		t.Errorf("fallback theme: got %q", got.Name)
	}
}

func TestPrintHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	SetTheme("mono")
	t.Cleanup(func() {
		Stdout, Stderr = prevOut, prevErr
		SetTheme("classic")
	})

	OK("added")
	Fail("boom")
	Hint("Run: tada auth login")
	Panel([]string{"Todos", "1. Buy milk"})

	if !strings.Contains(out.String(), "ok: added") {
		t.Errorf("OK output: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "error: boom") {
		t.Errorf("Fail output: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "Run: tada auth login") {
		t.Errorf("Hint output: %q", errOut.String())
	}
	if !strings.Contains(out.String(), "1. Buy milk") || !strings.Contains(out.String(), "┌") {
		t.Errorf("Panel output: %q", out.String())
	}
}
