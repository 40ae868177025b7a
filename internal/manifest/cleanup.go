package manifest

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/agentsync/agentsync/internal/fsops"
)

// Cleanup retires files that agent no longer produces.
//
// For each manifest entry that lists agent:
//   - If the file is in currentKeys, it is still active; nothing happens.
//   - Otherwise the agent is removed from the entry. If no agents
//     remain, the entry is dropped and the file is deleted from disk.
//
// Deletion failures are logged and non-fatal. Returns the relative
// paths of files deleted from disk.
func Cleanup(fs fsops.FS, outputDir string, m *Manifest, agent string, currentKeys map[string]bool) []string {
	var deleted []string

	// Snapshot the entries since RemoveAgent mutates m.Files.
	entries := make([]*Entry, len(m.Files))
	copy(entries, m.Files)

	for _, e := range entries {
		name := e.Name

		found := false
		for _, a := range e.Agents {
			if a == agent {
				found = true
				break
			}
		}
		if !found {
			continue
		}

		if currentKeys[name] {
			continue
		}

		// Agent no longer produces this file.
		fullyRemoved := m.RemoveAgent(name, agent)
		if !fullyRemoved {
			slog.Info("removed agent from co-owned file", "file", name, "agent", agent)
			continue
		}

		path := filepath.Join(outputDir, filepath.FromSlash(name))
		exists, err := fs.Exists(path)
		if err != nil || !exists {
			continue
		}
		if err := fs.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("could not delete stale file", "file", name, "error", err)
			continue
		}

		deleted = append(deleted, name)
		slog.Info("deleted stale file", "file", name, "agent", agent)
	}

	return deleted
}
