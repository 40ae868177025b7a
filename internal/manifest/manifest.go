// Package manifest tracks the files agentsync has written to an output
// directory and which agents own them.
//
// Each output directory gets a `.agentsync/manifest` YAML document that
// records the files written, the agents that produced them, a content
// hash per file, and when the directory was last synced. The manifest is
// the authoritative record used by the safety evaluator: a file present
// in the manifest belongs to agentsync and is always safe to rewrite.
package manifest

import (
	"path/filepath"
	"slices"
)

// Location of the manifest relative to the output directory.
const (
	Dir  = ".agentsync"
	File = "manifest"
)

// Entry records one file written by agentsync.
type Entry struct {
	// Name is the file path relative to the output directory.
	Name string `yaml:"name"`

	// Agents lists the producer ids that wrote this file. Never empty
	// for a persisted entry: the entry is deleted when the last agent
	// is removed.
	Agents []string `yaml:"agents"`

	// Hash is the SHA-256 hex digest of the file as last written.
	Hash string `yaml:"hash"`
}

// Manifest is the per-output-directory ledger.
type Manifest struct {
	// LastSynced is an RFC-3339 timestamp of the last completed run,
	// or nil if the directory has never been synced.
	LastSynced *string `yaml:"last_synced"`

	// Files are the tracked entries, keyed by Name.
	Files []*Entry `yaml:"files"`
}

// Empty returns a new empty manifest.
func Empty() *Manifest {
	return &Manifest{Files: []*Entry{}}
}

// PathFor returns the full path to the manifest file for a directory.
func PathFor(outputDir string) string {
	return filepath.Join(outputDir, Dir, File)
}

// Lookup finds an entry by file name, or nil if not tracked.
func (m *Manifest) Lookup(name string) *Entry {
	for _, e := range m.Files {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// IsManaged reports whether name is tracked in the manifest.
func (m *Manifest) IsManaged(name string) bool {
	return m.Lookup(name) != nil
}

// Upsert adds or refreshes the entry for name. If the entry exists the
// agent is appended to its agent list (if not already present) and the
// hash is replaced; otherwise a new entry is created.
func (m *Manifest) Upsert(name, agent, hash string) {
	if e := m.Lookup(name); e != nil {
		if !slices.Contains(e.Agents, agent) {
			e.Agents = append(e.Agents, agent)
		}
		e.Hash = hash
		return
	}

	m.Files = append(m.Files, &Entry{
		Name:   name,
		Agents: []string{agent},
		Hash:   hash,
	})
}

// RemoveAgent removes agent from the entry for name. If the agent list
// becomes empty, the entry itself is removed; a manifest entry never
// persists with no owners.
//
// Returns true if the entry was fully removed, false if the agent was
// just dropped from the list or the entry/agent was not found.
func (m *Manifest) RemoveAgent(name, agent string) bool {
	e := m.Lookup(name)
	if e == nil {
		return false
	}

	if i := slices.Index(e.Agents, agent); i >= 0 {
		e.Agents = slices.Delete(e.Agents, i, i+1)
	}

	if len(e.Agents) == 0 {
		m.Files = slices.DeleteFunc(m.Files, func(f *Entry) bool {
			return f.Name == name
		})
		return true
	}

	return false
}
