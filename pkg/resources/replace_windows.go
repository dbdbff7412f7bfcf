//go:build windows

package resources

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/windows"
)

// atomicReplace atomically replaces a destination file with a source file.
// Uses MoveFileEx with retry logic to handle Windows file locking.
func atomicReplace(sourcePath, destPath string, logger hclog.Logger) error {
	logger.Debug("Performing atomic file replacement",
		"source", sourcePath,
		"dest", destPath)

	fromPtr, err := windows.UTF16PtrFromString(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to convert source path to UTF-16: %w", err)
	}
	toPtr, err := windows.UTF16PtrFromString(destPath)
	if err != nil {
		return fmt.Errorf("failed to convert dest path to UTF-16: %w", err)
	}

	var flags uint32 = windows.MOVEFILE_REPLACE_EXISTING | windows.MOVEFILE_WRITE_THROUGH

	// Retry with exponential backoff
	const maxAttempts = 3
	delay := 50 * time.Millisecond

	for attempt := 1; ; attempt++ {
		err = windows.MoveFileEx(fromPtr, toPtr, flags)
		if err == nil {
			if attempt > 1 {
				logger.Debug("Replaced file after retry", "attempt", attempt)
			}
			return nil
		}
		if attempt == maxAttempts {
			return fmt.Errorf("failed after %d attempts (Windows file lock): %w", maxAttempts, err)
		}

		logger.Debug("Retrying atomic file replacement (Windows file lock)",
			"attempt", attempt,
			"next_delay_ms", delay.Milliseconds(),
			"error", err)
		time.Sleep(delay)
		delay *= 2
	}
}
