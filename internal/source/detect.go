package source

import (
	"os"
	"path/filepath"

	"github.com/agentsync/agentsync/internal/safety"
)

// Directory kinds reported by DetectKind.
const (
	KindGit   = "git"
	KindPlain = "plain"
)

// DetectKind classifies a directory: "git" when it contains a .git
// entry, "plain" otherwise, and "" when the directory does not exist.
func DetectKind(path string) string {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return ""
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		return KindGit
	}
	return KindPlain
}

// Detector adapts DetectKind to the safety.KindDetector interface.
type Detector struct{}

// Detect implements safety.KindDetector.
func (Detector) Detect(path string) string { return DetectKind(path) }

// OracleFor returns the recoverability oracle for files under dir:
// a git oracle when dir is a git checkout, nil otherwise. A nil
// oracle means unmanaged files there are never recoverable.
func OracleFor(dir string) safety.Oracle {
	if DetectKind(dir) == KindGit {
		return GitOracle{}
	}
	return nil
}
