package engine

import "errors"

var (
	// ErrOutputDir indicates the output directory could not be prepared.
	ErrOutputDir = errors.New("output directory not usable")

	// ErrManifest indicates the manifest could not be persisted.
	ErrManifest = errors.New("manifest update failed")
)
