package core

import "errors"

// Startup failures. Platform code wraps these so the CLI can map them to
// distinct exit codes with errors.Is.
var (
	// ErrInit reports that the graphics or window subsystem is unavailable.
	ErrInit = errors.New("platform initialization failed")

	// ErrAssetLoad reports a missing or corrupt font or image.
	ErrAssetLoad = errors.New("asset load failed")
)
