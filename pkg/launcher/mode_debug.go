//go:build launcherdebug

package launcher

var BuildMode = Debug
