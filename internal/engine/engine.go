// Package engine orchestrates a merge run: discovering files across the
// configuration hierarchy, layering them with the registered mergers,
// applying hooks, enforcing the safety checks, and keeping the manifest
// in sync with what was written.
package engine

import (
	"github.com/agentsync/agentsync/internal/fsops"
	"github.com/agentsync/agentsync/internal/hash"
	"github.com/agentsync/agentsync/internal/hooks"
	"github.com/agentsync/agentsync/internal/manifest"
	"github.com/agentsync/agentsync/internal/merge"
	"github.com/agentsync/agentsync/internal/safety"
	"github.com/agentsync/agentsync/internal/source"
)

// Engine coordinates merge runs. All collaborators are injected so
// tests can substitute fakes.
type Engine struct {
	fs        fsops.FS
	hasher    hash.Hasher
	manifests manifest.Store
	registry  *merge.Registry
	hooks     *hooks.Pipeline
	detector  safety.KindDetector
	oracleFor func(dir string) safety.Oracle

	hierarchy []source.Entry
	// settings holds raw per-merger settings keyed by merger name;
	// sanitized against each merger's schema at use time.
	settings map[string]map[string]any
}

// New creates an Engine.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	manifests manifest.Store,
	registry *merge.Registry,
	pipeline *hooks.Pipeline,
	detector safety.KindDetector,
	oracleFor func(dir string) safety.Oracle,
	hierarchy []source.Entry,
	settings map[string]map[string]any,
) *Engine {
	if oracleFor == nil {
		oracleFor = func(string) safety.Oracle { return nil }
	}
	return &Engine{
		fs:        fs,
		hasher:    hasher,
		manifests: manifests,
		registry:  registry,
		hooks:     pipeline,
		detector:  detector,
		oracleFor: oracleFor,
		hierarchy: hierarchy,
		settings:  settings,
	}
}
