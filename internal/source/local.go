package source

import "os"

// LocalSource is a hierarchy level backed by a plain directory with no
// version control. Nothing under it is recoverable.
type LocalSource struct {
	name string
	path string
}

// NewLocalSource creates a plain-directory source rooted at path.
func NewLocalSource(name, path string) *LocalSource {
	return &LocalSource{name: name, path: path}
}

// Name implements Source.
func (s *LocalSource) Name() string { return s.name }

// LocalPath implements Source.
func (s *LocalSource) LocalPath() string { return s.path }

// Exists implements Source.
func (s *LocalSource) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.IsDir()
}
