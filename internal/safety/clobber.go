// Package safety implements overwrite protection for merged files and
// directory type validation for output directories.
//
// Before the merge engine writes a file it asks for a clobber verdict:
// files tracked in the manifest are ours to rewrite, files missing from
// disk are new, and anything else is a clobber whose severity depends on
// whether the previous content can be recovered (e.g. via version
// control). Clobbers are a policy decision, not an error: the default is
// to skip with a warning, and --force overrides.
package safety

import (
	"log/slog"
	"path/filepath"

	"github.com/agentsync/agentsync/internal/fsops"
	"github.com/agentsync/agentsync/internal/manifest"
)

// Action classifies a candidate write.
type Action string

const (
	// Safe: the file is tracked in the manifest; we wrote it last time.
	Safe Action = "safe"

	// NewFile: nothing exists at the path yet.
	NewFile Action = "new_file"

	// ClobberRecoverable: an unmanaged file exists but its content can
	// be recovered (e.g. tracked and clean in version control).
	ClobberRecoverable Action = "clobber_recoverable"

	// ClobberRisky: an unmanaged file exists and cannot be recovered.
	ClobberRisky Action = "clobber_risky"
)

// Verdict is the result of a clobber check for a single file.
// Computed fresh per write attempt, never persisted.
type Verdict struct {
	Action Action
	Path   string
	Reason string
}

// IsSafe reports whether the write may proceed unconditionally.
func (v Verdict) IsSafe() bool {
	return v.Action == Safe || v.Action == NewFile
}

// Oracle reports whether an unmanaged file's content is recoverable
// after an overwrite. Implemented by the source layer (a git-backed
// oracle returns true for tracked, clean files).
type Oracle interface {
	SafeToOverwrite(path string) bool
}

// CheckClobber determines the safety of writing name under outputDir.
//
// Decision tree:
//  1. Tracked in the manifest -> Safe (declared sole ownership).
//  2. Nothing on disk -> NewFile.
//  3. Unmanaged file on disk:
//     a. oracle reports recoverable -> ClobberRecoverable
//     b. otherwise -> ClobberRisky
func CheckClobber(fs fsops.FS, name, outputDir string, m *manifest.Manifest, oracle Oracle) Verdict {
	if m.IsManaged(name) {
		return Verdict{Safe, name, "file tracked in manifest"}
	}

	path := filepath.Join(outputDir, filepath.FromSlash(name))
	exists, err := fs.Exists(path)
	if err == nil && !exists {
		return Verdict{NewFile, name, "file does not exist yet"}
	}

	if oracle != nil && oracle.SafeToOverwrite(path) {
		return Verdict{ClobberRecoverable, name, "file exists (unmanaged) but is recoverable via VCS"}
	}

	return Verdict{ClobberRisky, name, "file exists (unmanaged) and cannot be recovered"}
}

// ShouldWrite decides whether to proceed with a write given the verdict.
//
// Safe and new files are always written. For clobber cases:
//   - force: always write
//   - non-interactive (without force): skip
//   - interactive default: skip (prompting is planned, not implemented)
//
// Every clobber determination is logged regardless of the outcome.
func ShouldWrite(v Verdict, force, nonInteractive bool) bool {
	if v.IsSafe() {
		return true
	}

	if force {
		slog.Warn("overwriting unmanaged file",
			"file", v.Path, "action", string(v.Action), "forced", true)
		return true
	}

	slog.Warn("skipped unmanaged file",
		"file", v.Path, "action", string(v.Action), "reason", v.Reason,
		"non_interactive", nonInteractive)
	return false
}
