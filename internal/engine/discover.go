package engine

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentsync/agentsync/internal/source"
)

// excludePatterns are never synced, matched glob-style against each
// path segment so directory names prune their whole subtree.
var excludePatterns = []string{
	".git", ".gitignore", "__pycache__", "*.pyc", ".DS_Store",
	"README.md", "LICENSE", ".venv", "venv", "env", "node_modules",
	".pytest_cache", ".ruff_cache", "*.egg-info",
}

// excluded reports whether any segment of key matches an exclude pattern.
func excluded(key string) bool {
	for _, seg := range strings.Split(key, "/") {
		for _, pat := range excludePatterns {
			if ok, err := path.Match(pat, seg); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// discover returns the syncable files of one source for a scope
// subdirectory, as output-relative keys in lexical order.
func (e *Engine) discover(ent source.Entry, subdir string) ([]string, string, error) {
	root := ent.Source.LocalPath()
	if subdir != "" {
		root = filepath.Join(root, filepath.FromSlash(subdir))
	}

	files, err := e.fs.WalkFiles(root)
	if err != nil {
		return nil, root, err
	}

	keys := make([]string, 0, len(files))
	for _, key := range files {
		if excluded(key) {
			continue
		}
		if err := e.fs.ValidateRelPath(filepath.FromSlash(key)); err != nil {
			slog.Warn("skipping unsafe path from source", "source", ent.Name, "path", key, "error", err)
			continue
		}
		keys = append(keys, key)
	}
	return keys, root, nil
}
