package engine

import "fmt"

// ScopeConfig describes one tool scope: where merged files land and
// which subdirectory of each source feeds it.
type ScopeConfig struct {
	// Directory is the output directory merged files are written to.
	Directory string

	// Subdir is the per-source discovery subdirectory. Empty means the
	// source root itself.
	Subdir string

	// Kind is the expected directory kind ("git", "plain"); empty means
	// no expectation.
	Kind string

	// Description is free-form, for status output.
	Description string
}

// Request describes one merge run.
type Request struct {
	// OutputDir is where merged files are written.
	OutputDir string

	// Scope filters hierarchy entries via their applicable scopes.
	Scope string

	// Subdir is the discovery subdirectory under each source.
	Subdir string

	// Agent is the producer id recorded in the manifest.
	Agent string

	// DirKind, when non-empty, is validated against the detected kind
	// of OutputDir before anything is written.
	DirKind string

	Force          bool
	NonInteractive bool
	DryRun         bool
}

// Result reports what a merge run did (or, for dry runs, would do).
type Result struct {
	// Written lists output-relative paths written this run.
	Written []string

	// Skipped lists paths withheld by the clobber policy.
	Skipped []string

	// Deleted lists stale paths removed during cleanup.
	Deleted []string

	// SkippedClobber counts clobber skips; SkippedType is 1 when the
	// whole run was skipped by the directory kind gate.
	SkippedClobber int
	SkippedType    int

	// Warnings collects user-facing problems that did not stop the run.
	Warnings []string
}

// Clean reports whether the run completed without skips or warnings.
func (r *Result) Clean() bool {
	return r.SkippedClobber == 0 && r.SkippedType == 0 && len(r.Warnings) == 0
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
