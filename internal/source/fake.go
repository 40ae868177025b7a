package source

// FakeSource implements Source with predetermined values for testing.
type FakeSource struct {
	name   string
	path   string
	exists bool
}

// NewFakeSource creates a FakeSource that exists at the given path.
func NewFakeSource(name, path string) *FakeSource {
	return &FakeSource{name: name, path: path, exists: true}
}

// SetExists controls what Exists reports.
func (s *FakeSource) SetExists(exists bool) { s.exists = exists }

// Name implements Source.
func (s *FakeSource) Name() string { return s.name }

// LocalPath implements Source.
func (s *FakeSource) LocalPath() string { return s.path }

// Exists implements Source.
func (s *FakeSource) Exists() bool { return s.exists }
