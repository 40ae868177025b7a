package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteCreatesParents(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "a", "b", "file.txt")
	if err := fs.AtomicWrite(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	if err := fs.AtomicWrite(filepath.Join(dir, "f"), []byte("x"), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 entry, got %d", len(entries))
	}
}

func TestExists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	exists, err := fs.Exists(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected missing path to not exist")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	exists, err = fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected present path to exist")
	}
}

func TestWalkFiles(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	mustWrite(t, filepath.Join(dir, "b.md"), "b")
	mustWrite(t, filepath.Join(dir, "a.md"), "a")
	mustWrite(t, filepath.Join(dir, "nested", "c.txt"), "c")

	files, err := fs.WalkFiles(dir)
	if err != nil {
		t.Fatalf("WalkFiles failed: %v", err)
	}

	want := []string{"a.md", "b.md", "nested/c.txt"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestWalkFilesMissingRoot(t *testing.T) {
	fs := NewRealFS()

	files, err := fs.WalkFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("WalkFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty slice for missing root, got %v", files)
	}
}

func TestValidateRelPath(t *testing.T) {
	fs := NewRealFS()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"agents/JIRA.md", false},
		{"rules.md", false},
		{".", true},
		{"", true},
		{"/abs/path", true},
		{"../escape", true},
		{"a/../../escape", true},
	}

	for _, tt := range tests {
		err := fs.ValidateRelPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRelPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
