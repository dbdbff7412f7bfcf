package launcher

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/ocr-server/bootlauncher/pkg/logging"
)

// Launch is the process entry point. Arguments are accepted and ignored.
func Launch(args []string) (code int) {
	logger := logging.NewLogger("bootlauncher", logging.GetLogLevel(), os.Stderr)
	if len(args) > 0 {
		logger.Debug("Ignoring command-line arguments", "count", len(args))
	}

	return runRecovered(New(WithLogger(logger)), logger)
}

// runRecovered runs l, turning a panic into a report and the failure code.
func runRecovered(l *Launcher, logger hclog.Logger) (code int) {
	// Set up panic recovery to return the failure exit code
	defer func() {
		if r := recover(); r != nil {
			logger.Error("🚨 PANIC", "panic", r, "stack", string(debug.Stack()))
			l.reporter.Report(fmt.Sprintf("Launcher failed unexpectedly: %v", r))
			code = ExitFailure
		}
	}()

	return l.Run()
}
