package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentsync/agentsync/internal/fsops"
)

func TestCleanupDeletesStaleSoloFile(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	stale := filepath.Join(dir, "old.md")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	m := Empty()
	m.Upsert("old.md", "claude", "h")
	m.Upsert("keep.md", "claude", "h")

	deleted := Cleanup(fs, dir, m, "claude", map[string]bool{"keep.md": true})

	if len(deleted) != 1 || deleted[0] != "old.md" {
		t.Errorf("deleted = %v, want [old.md]", deleted)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file should be deleted from disk")
	}
	if m.Lookup("old.md") != nil {
		t.Error("stale entry should be removed from manifest")
	}
	if m.Lookup("keep.md") == nil {
		t.Error("active entry should survive cleanup")
	}
}

func TestCleanupCoOwnedFileSurvives(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	shared := filepath.Join(dir, "shared.md")
	if err := os.WriteFile(shared, []byte("s"), 0644); err != nil {
		t.Fatal(err)
	}

	m := Empty()
	m.Upsert("shared.md", "claude", "h")
	m.Upsert("shared.md", "cursor", "h")

	deleted := Cleanup(fs, dir, m, "claude", map[string]bool{})

	if len(deleted) != 0 {
		t.Errorf("deleted = %v, want none for co-owned file", deleted)
	}
	if _, err := os.Stat(shared); err != nil {
		t.Error("co-owned file must remain on disk")
	}
	e := m.Lookup("shared.md")
	if e == nil {
		t.Fatal("co-owned entry must remain")
	}
	if len(e.Agents) != 1 || e.Agents[0] != "cursor" {
		t.Errorf("Agents = %v, want [cursor]", e.Agents)
	}
}

func TestCleanupIgnoresOtherAgentsEntries(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	m := Empty()
	m.Upsert("theirs.md", "cursor", "h")

	deleted := Cleanup(fs, dir, m, "claude", map[string]bool{})

	if len(deleted) != 0 {
		t.Errorf("deleted = %v, want none", deleted)
	}
	if m.Lookup("theirs.md") == nil {
		t.Error("another agent's entry must be untouched")
	}
}

func TestCleanupMissingFileOnDisk(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	m := Empty()
	m.Upsert("ghost.md", "claude", "h")

	// File never existed on disk; cleanup should drop the entry quietly.
	deleted := Cleanup(fs, dir, m, "claude", map[string]bool{})

	if len(deleted) != 0 {
		t.Errorf("deleted = %v, want none (nothing on disk)", deleted)
	}
	if m.Lookup("ghost.md") != nil {
		t.Error("entry should still be removed from manifest")
	}
}
