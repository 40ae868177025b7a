package hooks

import (
	"fmt"
	"strings"
)

// NormalizeWhitespace strips trailing whitespace and guarantees a
// single trailing newline. Registered for markdown sources by default.
func NormalizeWhitespace(content, sourceName, filePath string) (string, error) {
	return strings.TrimRight(content, " \t\r\n") + "\n", nil
}

// MetadataBanner returns a post-merge hook that prepends a provenance
// header to merged files using a comment syntax matching the file
// type. JSON files are left untouched since JSON has no comments.
func MetadataBanner(agent string) PostHook {
	return func(content, key string, sources []string) (string, error) {
		start, end, ok := commentStyle(key)
		if !ok || len(sources) == 0 {
			return content, nil
		}

		var b strings.Builder
		line := func(text string) {
			b.WriteString(start)
			b.WriteString(text)
			b.WriteString(end)
			b.WriteByte('\n')
		}
		line(fmt.Sprintf("Generated by agentsync (%s agent)", agent))
		line("File: " + key)
		line("Sources: " + strings.Join(sources, " → "))
		line(fmt.Sprintf("Hierarchy: %s (lowest) to %s (highest priority)",
			sources[0], sources[len(sources)-1]))
		b.WriteByte('\n')
		b.WriteString(content)
		return b.String(), nil
	}
}

// commentStyle picks the comment delimiters for a file. The third
// return is false when the format cannot carry comments at all.
func commentStyle(key string) (start, end string, ok bool) {
	lower := strings.ToLower(key)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return "", "", false
	case hasAnySuffix(lower, ".md", ".markdown", ".html", ".xml"):
		return "<!-- ", " -->", true
	default:
		// Hash comments work for yaml, txt, shell, python, rule files,
		// and are the least-bad guess for unknown formats.
		return "# ", "", true
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// NewDefaultPipeline builds the standard pipeline: markdown whitespace
// normalization before merging, and a provenance banner on everything
// after merging.
func NewDefaultPipeline(agent string) *Pipeline {
	p := NewPipeline()
	p.RegisterPre("*.md", NormalizeWhitespace)
	p.RegisterPre("*.markdown", NormalizeWhitespace)
	p.RegisterPost("*", MetadataBanner(agent))
	return p
}
