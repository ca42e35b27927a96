package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"noted/internal/types"
)

func TestPrintNotes(t *testing.T) {
	var buf bytes.Buffer
	printNotes(&buf, []types.Note{
		{ID: "a", Title: "Groceries", UpdatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
		{ID: "b"},
	})
	out := buf.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "TITLE") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "Groceries") {
		t.Fatalf("missing note title: %q", out)
	}
	if !strings.Contains(out, "Untitled") {
		t.Fatalf("empty title must render as Untitled: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewVersionCommand(&buf, "1.2.3")
	if err := cmd.Run(nil); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "1.2.3" {
		t.Fatalf("version output = %q", buf.String())
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewConfigCommand(&out, &errOut)
	if err := cmd.Run([]string{"--defaults"}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out.String(), "search_debounce_ms = 200") {
		t.Fatalf("defaults output = %q", out.String())
	}
}

func TestBuildCommandsCoversUsage(t *testing.T) {
	commands := buildCommands(defaultCommandWiring(nil, nil))
	for _, name := range []string{"ui", "ls", "config", "version"} {
		if _, ok := commands[name]; !ok {
			t.Fatalf("missing command %q", name)
		}
	}
}
