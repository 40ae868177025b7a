package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashFileDeterministic(t *testing.T) {
	h := NewSHA256Hasher()
	dir := t.TempDir()

	path := filepath.Join(dir, "rules.md")
	if err := os.WriteFile(path, []byte("# Rules\n"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := h.HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	second, err := h.HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}

	if first == "" {
		t.Error("expected non-empty hash")
	}
	if first != second {
		t.Errorf("hash not deterministic: %q != %q", first, second)
	}
}

func TestHashFileDiffersByContent(t *testing.T) {
	h := NewSHA256Hasher()
	dir := t.TempDir()

	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("A"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("B"), 0644); err != nil {
		t.Fatal(err)
	}

	ha, _ := h.HashFile(a)
	hb, _ := h.HashFile(b)
	if ha == hb {
		t.Error("different contents should produce different hashes")
	}
}

func TestHashFileMissing(t *testing.T) {
	h := NewSHA256Hasher()

	if _, err := h.HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFakeHasher(t *testing.T) {
	h := NewFakeHasher()
	h.SetHash("/out/rules.md", "abc123")

	got, err := h.HashFile("/out/rules.md")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("hash = %q, want %q", got, "abc123")
	}

	got, _ = h.HashFile("/unknown")
	if got != "fakehash" {
		t.Errorf("default hash = %q, want %q", got, "fakehash")
	}
}
