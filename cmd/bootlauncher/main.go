// Command bootlauncher starts the bundled interpreter next to it with boot.py.
//
// Release build (no console window, error dialogs):
//
//	go build -ldflags "-H windowsgui" ./cmd/bootlauncher
//
// Debug build (console interpreter, errors on stdout, waits for the child):
//
//	go build -tags launcherdebug ./cmd/bootlauncher
package main

import (
	"os"

	"github.com/ocr-server/bootlauncher/pkg/launcher"
)

//go:generate go run ../bootlauncher-res syso --out rsrc_windows_amd64.syso --arch amd64

func main() {
	os.Exit(launcher.Launch(os.Args[1:]))
}
