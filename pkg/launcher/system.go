package launcher

import (
	"os"
)

// System is the set of OS primitives the pipeline runs on.
type System interface {
	// Executable returns the absolute path of the running image.
	Executable() (string, error)

	// Chdir sets the process working directory.
	Chdir(dir string) error

	// Setenv sets a variable in the process environment; children inherit it.
	Setenv(key, value string) error

	// Exists queries the file attributes of path.
	Exists(path string) bool

	// Spawn creates a child from a full command line with no application
	// name, no handle inheritance, the parent environment and the parent
	// working directory.
	Spawn(cmdLine string, creationFlags uint32) (Process, error)
}

// Process is a spawned child. Close releases every handle still held.
type Process interface {
	Pid() int
	Wait() error
	ExitCode() (uint32, error)
	Close() error
}

// OS is the System backed by the running operating system.
type OS struct{}

var _ System = OS{}

func (OS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (OS) Setenv(key, value string) error {
	return os.Setenv(key, value)
}
