package logging

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// LogLevelEnv selects the log level, optionally prefixed with "json:"
	LogLevelEnv = "BOOTLAUNCHER_LOG_LEVEL"
	// JSONLogEnv switches the output to JSON lines
	JSONLogEnv = "BOOTLAUNCHER_JSON_LOG"

	defaultLevel = "warn"
)

// NewLogger creates a new hclog logger with standard settings.
// Level accepts the plain hclog names or a "json:<level>" form.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	actualLevel, jsonFormat := ParseLevel(level)
	if EnvTrue(JSONLogEnv) {
		jsonFormat = true
	}

	// Add prefix for non-JSON output (ASCII on Windows, emoji elsewhere)
	if !jsonFormat {
		prefix := "[GO] "
		if runtime.GOOS != "windows" {
			prefix = "🐹 "
		}
		output = NewPrefixWriter(prefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(LogLevelEnv)
	if level == "" {
		level = defaultLevel // quiet unless asked
	}
	return level
}

// ParseLevel splits a "json:debug" style level into the level name and the
// JSON flag. A bare "json" means info.
func ParseLevel(level string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(level), "json") {
		return level, false
	}
	if _, actual, ok := strings.Cut(level, ":"); ok && actual != "" {
		return actual, true
	}
	return "info", true
}

// EnvTrue checks if an environment variable is set to a true value
func EnvTrue(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}

	valLower := strings.ToLower(val)
	if valLower == "on" || valLower == "yes" {
		return true
	}

	result, err := strconv.ParseBool(val)
	return err == nil && result
}
