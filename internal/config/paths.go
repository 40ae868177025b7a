// Package config loads the agentsync configuration: the hierarchy of
// sources, the per-scope output directories, merger settings, and
// logging options.
package config

import (
	"os"
	"path/filepath"
)

const (
	// RootEnv overrides the agentsync root directory.
	RootEnv = "AGENTSYNC_ROOT"

	rootDirName    = ".agentsync"
	configFileName = "agentsync.yaml"
	logFileName    = "agentsync.log"
)

// Root returns the agentsync root directory: $AGENTSYNC_ROOT when set,
// otherwise ~/.agentsync.
func Root() string {
	if root := os.Getenv(RootEnv); root != "" {
		return root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return rootDirName
	}
	return filepath.Join(home, rootDirName)
}

// ConfigFile returns the path of the configuration file.
func ConfigFile() string {
	return filepath.Join(Root(), configFileName)
}

// LogFile returns the path of the rotating log file.
func LogFile() string {
	return filepath.Join(Root(), logFileName)
}

// EnsureRoot creates the root directory if it does not exist.
func EnsureRoot() error {
	return os.MkdirAll(Root(), 0755)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
