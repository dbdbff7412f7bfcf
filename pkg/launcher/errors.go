package launcher

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrSelfLocation       = errors.New("❌ failed to get executable path")
	ErrWorkingDir         = errors.New("❌ failed to set current directory")
	ErrInterpreterMissing = errors.New("❌ python environment not found")
	ErrSpawnFailed        = errors.New("❌ failed to launch process")
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Kind identifies one of the launcher's failure conditions.
type Kind int

const (
	SelfLocationFailed Kind = iota + 1
	WorkingDirFailed
	InterpreterMissing
	SpawnFailed
)

func (k Kind) String() string {
	switch k {
	case SelfLocationFailed:
		return "SelfLocationFailed"
	case WorkingDirFailed:
		return "WorkingDirFailed"
	case InterpreterMissing:
		return "InterpreterMissing"
	case SpawnFailed:
		return "SpawnFailed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case SelfLocationFailed:
		return ErrSelfLocation
	case WorkingDirFailed:
		return ErrWorkingDir
	case InterpreterMissing:
		return ErrInterpreterMissing
	case SpawnFailed:
		return ErrSpawnFailed
	}
	return nil
}

// Error is a fatal launcher failure. Message is what the user sees.
type Error struct {
	Kind Kind

	// Path is the interpreter path for InterpreterMissing.
	Path string

	// Code is the OS error code for SpawnFailed.
	Code uint32

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind.sentinel(), e.Err)
}

// Unwrap exposes both the kind's sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Message returns the text reported to the user.
func (e *Error) Message() string {
	switch e.Kind {
	case SelfLocationFailed:
		return "Failed to get executable path."
	case WorkingDirFailed:
		return "Failed to set current directory."
	case InterpreterMissing:
		return fmt.Sprintf("Python environment not found at:\n%s\n\nPlease ensure base_env is configured correctly.", e.Path)
	case SpawnFailed:
		return fmt.Sprintf("Failed to launch process.\nError code: %d", e.Code)
	}
	return e.Error()
}

// errorCode extracts the OS error number from err, or 0.
func errorCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
