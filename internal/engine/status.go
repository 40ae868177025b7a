package engine

import "github.com/agentsync/agentsync/internal/manifest"

// StatusInfo summarizes the manifest state of one output directory.
type StatusInfo struct {
	OutputDir  string
	LastSynced string // empty when the directory has never been synced
	Files      []*manifest.Entry
}

// Status reports what agentsync currently manages under outputDir.
func (e *Engine) Status(outputDir string) *StatusInfo {
	m := e.manifests.Read(outputDir)

	info := &StatusInfo{OutputDir: outputDir, Files: m.Files}
	if m.LastSynced != nil {
		info.LastSynced = *m.LastSynced
	}
	return info
}
