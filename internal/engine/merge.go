package engine

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/agentsync/agentsync/internal/manifest"
	"github.com/agentsync/agentsync/internal/merge"
	"github.com/agentsync/agentsync/internal/safety"
)

// Merge performs one merge run for a scope.
//
// Files are discovered per source in hierarchy order (lowest priority
// first), layered key-wise through the registered mergers, passed
// through the hook pipeline, checked against the clobber policy, and
// written atomically. Stale files the agent no longer produces are
// retired, and the manifest is persisted exactly once at the end.
//
// Dry runs compute the same verdicts but touch nothing on disk.
func (e *Engine) Merge(req Request) (*Result, error) {
	res := &Result{}

	// Directory kind gate, before anything is created or written.
	if req.DirKind != "" {
		tv := safety.CheckDirType(req.OutputDir, req.DirKind, e.detector)
		if !safety.ShouldProceedOnType(tv, req.Force, req.NonInteractive) {
			res.SkippedType = 1
			res.warnf("skipped %s: %s", req.OutputDir, tv.Message)
			return res, nil
		}
	}

	if !req.DryRun {
		if err := e.fs.MkdirAll(req.OutputDir, 0755); err != nil {
			return res, fmt.Errorf("%w: %s: %v", ErrOutputDir, req.OutputDir, err)
		}
	}

	m := e.manifests.Read(req.OutputDir)
	merged, contributors := e.accumulate(req, res)

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	oracle := e.oracleFor(req.OutputDir)
	currentKeys := make(map[string]bool, len(keys))

	for _, key := range keys {
		currentKeys[key] = true
		content := e.hooks.RunPost(key, merged[key], contributors[key])

		verdict := safety.CheckClobber(e.fs, key, req.OutputDir, m, oracle)
		if !safety.ShouldWrite(verdict, req.Force, req.NonInteractive) {
			res.Skipped = append(res.Skipped, key)
			res.SkippedClobber++
			res.warnf("skipped %s: %s", key, verdict.Reason)
			continue
		}

		if req.DryRun {
			res.Written = append(res.Written, key)
			continue
		}

		path := filepath.Join(req.OutputDir, filepath.FromSlash(key))
		if err := e.fs.AtomicWrite(path, []byte(content), 0644); err != nil {
			// One bad file must not abort the run; the manifest entry is
			// left alone so the next run tries again.
			res.warnf("could not write %s: %v", key, err)
			slog.Warn("write failed, skipping file", "file", key, "error", err)
			continue
		}

		digest, err := e.hasher.HashFile(path)
		if err != nil {
			slog.Warn("could not hash written file", "file", key, "error", err)
		}
		m.Upsert(key, req.Agent, digest)
		res.Written = append(res.Written, key)
		slog.Info("wrote merged file", "file", key, "sources", contributors[key])
	}

	if req.DryRun {
		res.Deleted = plannedDeletions(m, req.Agent, currentKeys)
		return res, nil
	}

	res.Deleted = manifest.Cleanup(e.fs, req.OutputDir, m, req.Agent, currentKeys)

	if err := e.manifests.Write(req.OutputDir, m); err != nil {
		return res, fmt.Errorf("%w: %v", ErrManifest, err)
	}
	return res, nil
}

// accumulate layers every in-scope source's files into per-key merged
// content, lowest priority first.
func (e *Engine) accumulate(req Request, res *Result) (map[string]string, map[string][]string) {
	merged := make(map[string]string)
	contributors := make(map[string][]string)

	for _, ent := range e.hierarchy {
		if !ent.InScope(req.Scope) {
			continue
		}
		if !ent.Source.Exists() {
			res.warnf("source %q not found at %s", ent.Name, ent.Source.LocalPath())
			slog.Warn("source missing, skipping", "source", ent.Name, "path", ent.Source.LocalPath())
			continue
		}

		keys, root, err := e.discover(ent, req.Subdir)
		if err != nil {
			res.warnf("could not read source %q: %v", ent.Name, err)
			continue
		}
		if len(keys) == 0 {
			slog.Info("no configuration files found in source", "source", ent.Name, "path", root)
			continue
		}

		for _, key := range keys {
			srcPath := filepath.Join(root, filepath.FromSlash(key))
			data, err := e.fs.ReadFile(srcPath)
			if err != nil {
				res.warnf("could not read %s from source %q: %v", key, ent.Name, err)
				continue
			}

			content := e.hooks.RunPre(key, string(data), ent.Name, srcPath)

			prev, seen := merged[key]
			if !seen {
				merged[key] = content
				contributors[key] = []string{ent.Name}
				continue
			}

			merger := e.registry.ForPath(key)
			settings := merge.SanitizeSettings(merger, e.settings[merger.Name()])
			out, err := merger.Merge(prev, content, ent.Name, contributors[key], settings)
			if err != nil {
				// Keep the lower-priority content rather than lose it.
				res.warnf("merge failed for %s (source %q): %v", key, ent.Name, err)
				slog.Warn("merge failed, keeping prior content",
					"file", key, "merger", merger.Name(), "source", ent.Name, "error", err)
				continue
			}
			merged[key] = out
			contributors[key] = append(contributors[key], ent.Name)
		}
	}

	return merged, contributors
}

// plannedDeletions lists the files cleanup would retire, without
// touching the manifest or the disk.
func plannedDeletions(m *manifest.Manifest, agent string, currentKeys map[string]bool) []string {
	var planned []string
	for _, entry := range m.Files {
		if currentKeys[entry.Name] {
			continue
		}
		for _, a := range entry.Agents {
			if a == agent {
				planned = append(planned, entry.Name)
				break
			}
		}
	}
	return planned
}
