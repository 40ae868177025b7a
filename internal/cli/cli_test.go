package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/agentsync/agentsync/internal/merge"
)

func TestRootHasExpectedCommands(t *testing.T) {
	want := map[string]bool{
		"run":     false,
		"status":  false,
		"mergers": false,
		"version": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version = %q", rootCmd.Version)
	}

	SetVersion("")
	if rootCmd.Version != "1.2.3" {
		t.Error("empty version must not clobber the current one")
	}
}

func TestExecuteReportsUnknownCommand(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldStderr := os.Stderr
	os.Stderr = w
	defer func() {
		os.Stderr = oldStderr
		rootCmd.SetArgs(nil)
	}()

	rootCmd.SetArgs([]string{"no-such-command"})
	execErr := Execute()

	_ = w.Close()
	os.Stderr = oldStderr
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if execErr == nil {
		t.Fatal("unknown command must return an error")
	}
	if !strings.Contains(string(out), "unknown command") {
		t.Errorf("stderr = %q, want the error reported", out)
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseSlogLevel(tt.in, slog.LevelInfo); got != tt.want {
			t.Errorf("parseSlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDescribeSetting(t *testing.T) {
	one, six := 1, 6
	s := merge.SettingSpec{Name: "heading_level", Type: "int", Default: 2, Min: &one, Max: &six}
	got := describeSetting(s)
	if got != `int, default "2", range 1-6` {
		t.Errorf("describeSetting = %q", got)
	}
}
