// Package hooks runs content transformations around the merge step.
//
// Pre-merge hooks see each source file's content before it is merged;
// post-merge hooks see the final merged content before it is written.
// Hooks are matched to files by glob pattern and run in registration
// order. A failing hook never aborts a run: the error is logged and
// the content passes through unchanged.
package hooks

import (
	"log/slog"
	"path"
	"strings"
)

// PreHook transforms one source file's content before merging.
// sourceName identifies the contributing hierarchy source and filePath
// is the absolute path the content was read from.
type PreHook func(content, sourceName, filePath string) (string, error)

// PostHook transforms merged content before it is written. key is the
// output-relative file path and sources lists the contributing sources
// in priority order, lowest first.
type PostHook func(content, key string, sources []string) (string, error)

type preEntry struct {
	pattern string
	hook    PreHook
}

type postEntry struct {
	pattern string
	hook    PostHook
}

// Pipeline holds ordered hook registrations.
type Pipeline struct {
	pre  []preEntry
	post []postEntry
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// RegisterPre adds a pre-merge hook for files matching pattern.
func (p *Pipeline) RegisterPre(pattern string, h PreHook) {
	p.pre = append(p.pre, preEntry{pattern: pattern, hook: h})
}

// RegisterPost adds a post-merge hook for files matching pattern.
func (p *Pipeline) RegisterPost(pattern string, h PostHook) {
	p.post = append(p.post, postEntry{pattern: pattern, hook: h})
}

// RunPre applies all matching pre-merge hooks to content, in
// registration order, chaining each hook's output into the next.
func (p *Pipeline) RunPre(key, content, sourceName, filePath string) string {
	for _, e := range p.pre {
		if !matches(e.pattern, key) {
			continue
		}
		out, err := e.hook(content, sourceName, filePath)
		if err != nil {
			slog.Warn("pre-merge hook failed, content unchanged",
				"pattern", e.pattern, "file", key, "error", err)
			continue
		}
		content = out
	}
	return content
}

// RunPost applies all matching post-merge hooks to content, in
// registration order.
func (p *Pipeline) RunPost(key, content string, sources []string) string {
	for _, e := range p.post {
		if !matches(e.pattern, key) {
			continue
		}
		out, err := e.hook(content, key, sources)
		if err != nil {
			slog.Warn("post-merge hook failed, content unchanged",
				"pattern", e.pattern, "file", key, "error", err)
			continue
		}
		content = out
	}
	return content
}

// matches tests a glob pattern against an output-relative key.
// Patterns without a path separator match the base name, so "*.md"
// covers markdown files in subdirectories too.
func matches(pattern, key string) bool {
	if ok, err := path.Match(pattern, key); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if ok, err := path.Match(pattern, path.Base(key)); err == nil && ok {
			return true
		}
	}
	return false
}
