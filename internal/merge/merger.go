// Package merge provides the content-merger contract and the registry
// that resolves a file path to a merger.
//
// A merger is a pure function that combines two versions of one file
// into one: given the content accumulated from lower-priority sources
// and the content contributed by a higher-priority source, it produces
// the merged result. Purity is required: identical inputs must always
// produce identical output, so repeated runs are byte-identical.
//
// Mergers are resolved per path in priority order: exact file name,
// then extension, then the default fallback.
package merge

import (
	"fmt"
	"log/slog"
)

// Merger combines two versions of one file's content.
type Merger interface {
	// Name identifies the merger type for settings lookup and listing.
	Name() string

	// Merge combines existing (lower priority, possibly already merged)
	// with incoming (higher priority) content. contributor names the
	// source that supplied incoming; priorSources lists, in order, the
	// sources already folded into existing. settings holds sanitized
	// per-type settings.
	Merge(existing, incoming, contributor string, priorSources []string, settings map[string]any) (string, error)

	// Settings declares the merger's settings schema.
	Settings() []SettingSpec
}

// SettingSpec declares one configurable setting of a merger type.
type SettingSpec struct {
	Name    string
	Type    string // "string", "int", "bool"
	Default any
	Min     *int     // optional, int settings only
	Max     *int     // optional, int settings only
	Choices []string // optional, string settings only
}

// SanitizeSettings validates raw settings against a merger's schema.
// Unknown keys are dropped with a debug log. Values of the wrong type
// or outside min/max/choices are replaced by the schema default with a
// warning. Invalid settings are never fatal.
func SanitizeSettings(m Merger, raw map[string]any) map[string]any {
	specs := m.Settings()
	out := make(map[string]any, len(specs))
	for _, spec := range specs {
		out[spec.Name] = spec.Default
	}

	for key, value := range raw {
		spec, ok := findSpec(specs, key)
		if !ok {
			slog.Debug("ignoring unknown merger setting", "merger", m.Name(), "setting", key)
			continue
		}

		sanitized, err := sanitizeValue(spec, value)
		if err != nil {
			slog.Warn("invalid merger setting, using default",
				"merger", m.Name(), "setting", key, "value", value, "error", err)
			continue
		}
		out[key] = sanitized
	}

	return out
}

func findSpec(specs []SettingSpec, name string) (SettingSpec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return SettingSpec{}, false
}

func sanitizeValue(spec SettingSpec, value any) (any, error) {
	switch spec.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		if len(spec.Choices) > 0 && !contains(spec.Choices, s) {
			return nil, fmt.Errorf("%q not in %v", s, spec.Choices)
		}
		return s, nil

	case "int":
		n, ok := asInt(value)
		if !ok {
			return nil, fmt.Errorf("expected int, got %T", value)
		}
		// Out-of-range values clamp to the nearest bound.
		if spec.Min != nil && n < *spec.Min {
			n = *spec.Min
		}
		if spec.Max != nil && n > *spec.Max {
			n = *spec.Max
		}
		return n, nil

	case "bool":
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", value)
		}
		return b, nil
	}

	return nil, fmt.Errorf("unknown setting type %q", spec.Type)
}

// asInt accepts the numeric types YAML decoding may produce.
func asInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// settingString reads a sanitized string setting.
func settingString(settings map[string]any, name, fallback string) string {
	if v, ok := settings[name].(string); ok {
		return v
	}
	return fallback
}

// settingInt reads a sanitized int setting.
func settingInt(settings map[string]any, name string, fallback int) int {
	if v, ok := settings[name].(int); ok {
		return v
	}
	return fallback
}

// settingBool reads a sanitized bool setting.
func settingBool(settings map[string]any, name string, fallback bool) bool {
	if v, ok := settings[name].(bool); ok {
		return v
	}
	return fallback
}
