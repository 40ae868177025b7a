package merge

import (
	"path"
	"sort"
	"strings"
)

// Registry resolves a file path to a merger.
//
// Resolution order: exact file name, then extension, then the default
// fallback. Registries are populated at startup; lookups are read-only.
type Registry struct {
	byName   map[string]Merger
	byExt    map[string]Merger
	fallback Merger
}

// NewRegistry creates an empty registry with the given default merger.
func NewRegistry(fallback Merger) *Registry {
	return &Registry{
		byName:   make(map[string]Merger),
		byExt:    make(map[string]Merger),
		fallback: fallback,
	}
}

// RegisterFilename maps an exact file name (e.g. ".cursorrules") to a merger.
func (r *Registry) RegisterFilename(name string, m Merger) {
	r.byName[name] = m
}

// RegisterExtension maps an extension (with leading dot, e.g. ".md") to a merger.
func (r *Registry) RegisterExtension(ext string, m Merger) {
	r.byExt[strings.ToLower(ext)] = m
}

// ForPath returns the merger for the given file path or key.
func (r *Registry) ForPath(p string) Merger {
	base := path.Base(p)

	if m, ok := r.byName[base]; ok {
		return m
	}
	if m, ok := r.byExt[strings.ToLower(path.Ext(base))]; ok {
		return m
	}
	return r.fallback
}

// Default returns the fallback merger.
func (r *Registry) Default() Merger {
	return r.fallback
}

// Mergers returns every distinct registered merger, sorted by name,
// for listing in the CLI.
func (r *Registry) Mergers() []Merger {
	seen := map[string]Merger{r.fallback.Name(): r.fallback}
	for _, m := range r.byName {
		seen[m.Name()] = m
	}
	for _, m := range r.byExt {
		seen[m.Name()] = m
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Merger, 0, len(names))
	for _, name := range names {
		out = append(out, seen[name])
	}
	return out
}

// NewDefaultRegistry returns a registry populated with the built-in
// mergers: markdown files concatenate, plain text concatenates, JSON
// merges key-wise, rule files for cursor/cline concatenate, and
// everything else is overwritten by the highest-priority source.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(&OverwriteMerger{})

	md := &MarkdownMerger{}
	r.RegisterExtension(".md", md)
	r.RegisterExtension(".markdown", md)

	txt := &ConcatMerger{}
	r.RegisterExtension(".txt", txt)
	r.RegisterFilename(".cursorrules", txt)
	r.RegisterFilename(".clinerules", txt)

	r.RegisterExtension(".json", &JSONMerger{})

	return r
}
