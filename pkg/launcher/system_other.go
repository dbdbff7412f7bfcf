//go:build !windows

package launcher

import (
	"errors"
	"fmt"
	"os"
)

// Executable returns the running binary's path.
func (OS) Executable() (string, error) {
	return os.Executable()
}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Spawn is a stub for non-Windows platforms.
func (OS) Spawn(cmdLine string, creationFlags uint32) (Process, error) {
	return nil, fmt.Errorf("%w: process creation is only supported on Windows", errors.ErrUnsupported)
}
