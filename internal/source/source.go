// Package source models the configuration hierarchy: the ordered list
// of directories whose files are layered into each tool's output.
package source

import "slices"

// Source is one level of the configuration hierarchy.
type Source interface {
	// Name identifies the source in manifests, banners, and logs.
	Name() string

	// Exists reports whether the source directory is present on disk.
	Exists() bool

	// LocalPath returns the directory files are read from.
	LocalPath() string
}

// Entry pairs a source with the scopes it participates in. An entry
// with no scopes participates in every scope.
type Entry struct {
	Name   string
	Source Source
	Scopes []string
}

// InScope reports whether the entry contributes to the given scope.
func (e Entry) InScope(scope string) bool {
	if len(e.Scopes) == 0 {
		return true
	}
	return slices.Contains(e.Scopes, scope)
}
