package cli

import (
	"fmt"
	"sort"

	"github.com/agentsync/agentsync/internal/clock"
	"github.com/agentsync/agentsync/internal/config"
	"github.com/agentsync/agentsync/internal/engine"
	"github.com/agentsync/agentsync/internal/fsops"
	"github.com/agentsync/agentsync/internal/hash"
	"github.com/agentsync/agentsync/internal/hooks"
	"github.com/agentsync/agentsync/internal/manifest"
	"github.com/agentsync/agentsync/internal/merge"
	"github.com/agentsync/agentsync/internal/source"
)

// newEngine loads the configuration and wires an engine with real
// implementations of all dependencies.
func newEngine(agent string) (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := config.EnsureRoot(); err != nil {
		return nil, nil, fmt.Errorf("failed to prepare agentsync root: %w", err)
	}

	configureLogger(cfg.Log)

	if agent == "" {
		agent = cfg.Agent
	}

	fs := fsops.NewRealFS()
	store := manifest.NewFileStore(fs, &clock.RealClock{})

	eng := engine.New(
		fs,
		hash.NewSHA256Hasher(),
		store,
		merge.NewDefaultRegistry(),
		hooks.NewDefaultPipeline(agent),
		source.Detector{},
		source.OracleFor,
		cfg.BuildHierarchy(),
		cfg.Mergers,
	)
	return eng, cfg, nil
}

// scopeNames returns the scopes to operate on: the named one, or all
// configured scopes when name is empty.
func scopeNames(cfg *config.Config, name string) ([]string, error) {
	if name != "" {
		if _, err := cfg.Scope(name); err != nil {
			return nil, err
		}
		return []string{name}, nil
	}

	if len(cfg.Scopes) == 0 {
		return nil, fmt.Errorf("no scopes configured in %s", config.ConfigFile())
	}
	names := make([]string, 0, len(cfg.Scopes))
	for n := range cfg.Scopes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
