package safety

import (
	"fmt"
	"log/slog"
)

// TypeResult classifies the configured-vs-detected directory kind check.
type TypeResult string

const (
	// TypeMatch: configured kind equals the detected kind.
	TypeMatch TypeResult = "match"

	// TypeMismatch: configured kind differs from the detected kind.
	TypeMismatch TypeResult = "mismatch"

	// TypeNoConfig: no kind configured; whatever was detected stands.
	TypeNoConfig TypeResult = "no_config"

	// TypeNotExists: the directory does not exist.
	TypeNotExists TypeResult = "not_exists"
)

// TypeVerdict is the result of a directory kind validation.
type TypeVerdict struct {
	Result     TypeResult
	Configured string
	Detected   string
	Message    string
}

// OK reports whether processing may continue unconditionally.
func (t TypeVerdict) OK() bool {
	return t.Result == TypeMatch || t.Result == TypeNoConfig
}

// KindDetector inspects a directory and reports its kind ("git",
// "plain", ...) or "" when the directory does not exist.
type KindDetector interface {
	Detect(path string) string
}

// CheckDirType compares the configured directory kind with what the
// detector finds on disk. An empty configured kind means no config.
func CheckDirType(path, configured string, det KindDetector) TypeVerdict {
	detected := det.Detect(path)

	if detected == "" {
		return TypeVerdict{
			Result:     TypeNotExists,
			Configured: configured,
			Message:    fmt.Sprintf("directory does not exist: %s", path),
		}
	}

	if configured == "" {
		return TypeVerdict{
			Result:   TypeNoConfig,
			Detected: detected,
			Message:  fmt.Sprintf("no type configured; detected as %q", detected),
		}
	}

	if configured == detected {
		return TypeVerdict{
			Result:     TypeMatch,
			Configured: configured,
			Detected:   detected,
		}
	}

	return TypeVerdict{
		Result:     TypeMismatch,
		Configured: configured,
		Detected:   detected,
		Message: fmt.Sprintf("directory %q type mismatch: configured as %q, detected as %q",
			path, configured, detected),
	}
}

// ShouldProceedOnType decides whether to continue when the directory
// kind check did not pass cleanly.
//
//   - Match or no config: always proceed.
//   - NotExists: always skip.
//   - Mismatch + force: proceed.
//   - Mismatch otherwise: skip (both non-interactive and the interactive
//     default, pending prompt support).
func ShouldProceedOnType(v TypeVerdict, force, nonInteractive bool) bool {
	if v.OK() {
		return true
	}

	if v.Result == TypeNotExists {
		slog.Warn("directory type check failed", "result", string(v.Result), "detail", v.Message)
		return false
	}

	if force {
		slog.Warn("directory type mismatch overridden", "detail", v.Message, "forced", true)
		return true
	}

	slog.Warn("directory type mismatch, skipping",
		"detail", v.Message, "non_interactive", nonInteractive)
	return false
}
