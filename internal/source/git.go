package source

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitSource is a hierarchy level backed by a git checkout. Files under
// a git checkout are recoverable: overwriting them is safe when they
// are tracked and unmodified.
type GitSource struct {
	name string
	path string
}

// NewGitSource creates a git-backed source rooted at path.
func NewGitSource(name, path string) *GitSource {
	return &GitSource{name: name, path: path}
}

// Name implements Source.
func (s *GitSource) Name() string { return s.name }

// LocalPath implements Source.
func (s *GitSource) LocalPath() string { return s.path }

// Exists implements Source.
func (s *GitSource) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.IsDir()
}

// gitTracked reports whether git knows about the file.
func gitTracked(path string) bool {
	cmd := exec.Command("git", "ls-files", "--error-unmatch", filepath.Base(path))
	cmd.Dir = filepath.Dir(path)
	return cmd.Run() == nil
}

// gitClean reports whether the file has no uncommitted changes.
func gitClean(path string) bool {
	cmd := exec.Command("git", "status", "--porcelain", filepath.Base(path))
	cmd.Dir = filepath.Dir(path)
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == ""
}

// GitOracle answers recoverability questions for files inside a git
// checkout. A file is safe to overwrite when it is tracked and has no
// uncommitted changes, so its content can be restored from history.
type GitOracle struct{}

// SafeToOverwrite reports whether path can be recovered from git.
func (GitOracle) SafeToOverwrite(path string) bool {
	return gitTracked(path) && gitClean(path)
}
