// Package launcher starts the bundled interpreter that sits next to the
// launcher executable and hands it the bootstrap script.
//
// The pipeline is strictly sequential:
//
//	START → LOCATED → PINNED → RESOLVED → ENVSET → SPAWNED → END
//
// Any stage may stop in FAILED, which reports exactly one message and makes
// Run return ExitFailure. Nothing is retried.
package launcher

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/ocr-server/bootlauncher/internal/layout"
	"github.com/ocr-server/bootlauncher/pkg/utils/winargs"
)

// Launcher runs the launch pipeline once.
type Launcher struct {
	mode     Mode
	sys      System
	reporter Reporter
	style    layout.Style
	logger   hclog.Logger
	state    State
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithMode overrides BuildMode.
func WithMode(m Mode) Option {
	return func(l *Launcher) { l.mode = m }
}

// WithSystem replaces the OS primitives.
func WithSystem(sys System) Option {
	return func(l *Launcher) { l.sys = sys }
}

// WithReporter replaces the mode's default reporter.
func WithReporter(r Reporter) Option {
	return func(l *Launcher) { l.reporter = r }
}

// WithStyle sets the path syntax used to derive the layout.
func WithStyle(s layout.Style) Option {
	return func(l *Launcher) { l.style = s }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger hclog.Logger) Option {
	return func(l *Launcher) { l.logger = logger }
}

// New creates a Launcher for BuildMode on the running OS.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		mode:   BuildMode,
		sys:    OS{},
		style:  layout.Native,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.reporter == nil {
		l.reporter = defaultReporter(l.mode)
	}
	return l
}

// State returns the last stage reached.
func (l *Launcher) State() State {
	return l.state
}

// Run executes the pipeline and returns the process exit code.
func (l *Launcher) Run() int {
	l.logger.Debug("🚀 Launcher starting", "mode", l.mode)

	if err := l.run(); err != nil {
		l.fail(err)
		return ExitFailure
	}
	return ExitSuccess
}

func (l *Launcher) run() error {
	// Self-location
	image, err := l.sys.Executable()
	if err != nil {
		return &Error{Kind: SelfLocationFailed, Err: err}
	}
	paths, err := layout.New(l.style, image)
	if err != nil {
		return &Error{Kind: SelfLocationFailed, Err: err}
	}
	l.advance(StateLocated, "image", image, "base", paths.Base())

	// Working-directory pin
	if err := l.sys.Chdir(paths.Base()); err != nil {
		return &Error{Kind: WorkingDirFailed, Err: err}
	}
	l.advance(StatePinned, "cwd", paths.Base())

	// Path composition
	interpreter := paths.Interpreter(l.mode.Interpreter)
	bootScript := paths.BootScript()
	if !l.sys.Exists(interpreter) {
		return &Error{Kind: InterpreterMissing, Path: interpreter}
	}
	l.advance(StateResolved, "interpreter", interpreter, "boot", bootScript)

	// Environment preparation
	searchPath := paths.SearchPath()
	if err := l.sys.Setenv(layout.SearchPathVar, searchPath); err != nil {
		l.logger.Warn("⚠️ Failed to set search path, child may not find its packages",
			"var", layout.SearchPathVar, "error", err)
	}
	l.advance(StateEnvSet, "var", layout.SearchPathVar, "value", searchPath)

	// Child spawn
	cmdLine := CommandLine(interpreter, bootScript)
	l.logger.Debug("🔧 Creating process", "cmdline", cmdLine, "flags", l.mode.CreationFlags)
	proc, err := l.sys.Spawn(cmdLine, l.mode.CreationFlags)
	if err != nil {
		return &Error{Kind: SpawnFailed, Code: errorCode(err), Err: err}
	}
	l.advance(StateSpawned, "pid", proc.Pid())

	l.finish(proc)
	l.advance(StateEnd)
	return nil
}

// finish detaches from the child, or in wait mode blocks until it exits.
// The launcher's own exit code never depends on the child.
func (l *Launcher) finish(proc Process) {
	if l.mode.Wait {
		l.logger.Debug("⏳ Waiting for child to exit", "pid", proc.Pid())
		if err := proc.Wait(); err != nil {
			l.logger.Warn("⚠️ Wait on child failed", "pid", proc.Pid(), "error", err)
		} else if code, err := proc.ExitCode(); err == nil {
			l.logger.Info("⏹️ Child exited", "pid", proc.Pid(), "code", code)
		}
	}

	if err := proc.Close(); err != nil {
		l.logger.Warn("⚠️ Failed to close child handles", "pid", proc.Pid(), "error", err)
	}
}

func (l *Launcher) advance(s State, args ...interface{}) {
	l.state = s
	l.logger.Debug("✅ "+s.String(), args...)
}

func (l *Launcher) fail(err error) {
	l.state = StateFailed

	message := err.Error()
	var launchErr *Error
	if errors.As(err, &launchErr) {
		message = launchErr.Message()
	}

	l.logger.Error("❌ Launch failed", "error", err)
	l.reporter.Report(message)
}

// CommandLine composes the child command line: both paths double quoted,
// nothing escaped.
func CommandLine(interpreter, bootScript string) string {
	return winargs.Join([]string{interpreter, bootScript})
}
