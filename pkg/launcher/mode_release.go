//go:build !launcherdebug

package launcher

// BuildMode is selected at build time; add -tags launcherdebug for Debug.
var BuildMode = Release
