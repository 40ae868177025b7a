package merge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MarkdownMerger concatenates markdown documents, low priority first.
// Optionally each contribution gets a heading naming its source.
type MarkdownMerger struct{}

// Name implements Merger.
func (m *MarkdownMerger) Name() string { return "markdown" }

// Settings implements Merger.
func (m *MarkdownMerger) Settings() []SettingSpec {
	one, six := 1, 6
	return []SettingSpec{
		{Name: "separator", Type: "string", Default: "\n\n"},
		{Name: "source_headings", Type: "bool", Default: false},
		{Name: "heading_level", Type: "int", Default: 2, Min: &one, Max: &six},
	}
}

// Merge appends incoming after existing. Higher priority content comes
// last so it reads as the most specific layer.
func (m *MarkdownMerger) Merge(existing, incoming, contributor string, priorSources []string, settings map[string]any) (string, error) {
	sep := settingString(settings, "separator", "\n\n")

	if !settingBool(settings, "source_headings", false) {
		return existing + sep + incoming, nil
	}

	level := settingInt(settings, "heading_level", 2)
	marker := strings.Repeat("#", level)

	head := existing
	// Only the first merge needs to retrofit a heading for the seed content.
	if len(priorSources) == 1 {
		head = fmt.Sprintf("%s %s\n\n%s", marker, priorSources[0], existing)
	}

	return fmt.Sprintf("%s%s%s %s\n\n%s", head, sep, marker, contributor, incoming), nil
}

// ConcatMerger joins plain-text content with a separator.
type ConcatMerger struct{}

// Name implements Merger.
func (m *ConcatMerger) Name() string { return "concat" }

// Settings implements Merger.
func (m *ConcatMerger) Settings() []SettingSpec {
	return []SettingSpec{
		{Name: "separator", Type: "string", Default: "\n"},
	}
}

// Merge implements Merger.
func (m *ConcatMerger) Merge(existing, incoming, contributor string, priorSources []string, settings map[string]any) (string, error) {
	return existing + settingString(settings, "separator", "\n") + incoming, nil
}

// OverwriteMerger is the default fallback: the highest-priority source
// wins outright.
type OverwriteMerger struct{}

// Name implements Merger.
func (m *OverwriteMerger) Name() string { return "overwrite" }

// Settings implements Merger.
func (m *OverwriteMerger) Settings() []SettingSpec { return nil }

// Merge implements Merger.
func (m *OverwriteMerger) Merge(existing, incoming, contributor string, priorSources []string, settings map[string]any) (string, error) {
	return incoming, nil
}

// JSONMerger merges two JSON objects key-wise at the top level, with
// incoming keys overriding existing ones. Non-object documents cannot
// be merged and surface an error (the engine keeps the existing
// content and warns).
type JSONMerger struct{}

// Name implements Merger.
func (m *JSONMerger) Name() string { return "json" }

// Settings implements Merger.
func (m *JSONMerger) Settings() []SettingSpec {
	zero, eight := 0, 8
	return []SettingSpec{
		{Name: "indent", Type: "int", Default: 2, Min: &zero, Max: &eight},
	}
}

// Merge implements Merger.
func (m *JSONMerger) Merge(existing, incoming, contributor string, priorSources []string, settings map[string]any) (string, error) {
	var base, overlay map[string]json.RawMessage

	if err := json.Unmarshal([]byte(existing), &base); err != nil {
		return "", fmt.Errorf("existing content is not a JSON object: %w", err)
	}
	if err := json.Unmarshal([]byte(incoming), &overlay); err != nil {
		return "", fmt.Errorf("content from %q is not a JSON object: %w", contributor, err)
	}

	if base == nil {
		base = map[string]json.RawMessage{}
	}
	for k, v := range overlay {
		base[k] = v
	}

	indent := settingInt(settings, "indent", 2)
	out, err := json.MarshalIndent(base, "", strings.Repeat(" ", indent))
	if err != nil {
		return "", fmt.Errorf("failed to encode merged JSON: %w", err)
	}

	return string(out) + "\n", nil
}
