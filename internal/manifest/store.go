package manifest

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agentsync/agentsync/internal/clock"
	"github.com/agentsync/agentsync/internal/fsops"
)

// Store persists manifests under their output directories.
type Store interface {
	// Read loads the manifest for outputDir. It never fails: a missing,
	// unreadable, or corrupt manifest yields an empty manifest (with a
	// warning logged), so the safety evaluator governs instead of
	// silently trusting bad state.
	Read(outputDir string) *Manifest

	// Write persists the manifest for outputDir, refreshing LastSynced.
	Write(outputDir string, m *Manifest) error
}

// FileStore implements Store using YAML files on disk.
type FileStore struct {
	fs    fsops.FS
	clock clock.Clock
}

// NewFileStore creates a new FileStore.
func NewFileStore(fs fsops.FS, clk clock.Clock) *FileStore {
	return &FileStore{fs: fs, clock: clk}
}

// Read loads the manifest for outputDir, falling back to an empty
// manifest on any failure.
func (s *FileStore) Read(outputDir string) *Manifest {
	path := PathFor(outputDir)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not read manifest, treating as empty", "path", path, "error", err)
		}
		return Empty()
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		slog.Warn("could not parse manifest, treating as empty", "path", path, "error", err)
		return Empty()
	}
	if m.Files == nil {
		m.Files = []*Entry{}
	}

	return &m
}

// Write persists the manifest atomically, stamping LastSynced with the
// current time truncated to seconds.
func (s *FileStore) Write(outputDir string, m *Manifest) error {
	now := s.clock.Now().UTC().Format("2006-01-02T15:04:05Z07:00")
	m.LastSynced = &now

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := PathFor(outputDir)
	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	slog.Debug("manifest written", "path", path, "files", len(m.Files))
	return nil
}
