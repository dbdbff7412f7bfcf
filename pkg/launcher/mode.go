package launcher

import "github.com/ocr-server/bootlauncher/internal/layout"

// CreateNoWindow is the CREATE_NO_WINDOW process creation flag.
const CreateNoWindow = 0x08000000

// Mode carries everything that differs between the release and the debug
// launcher. Exactly one Mode is compiled in as BuildMode.
type Mode struct {
	Name string

	// Interpreter is the binary under base_env to start.
	Interpreter string

	// CreationFlags are passed to process creation unchanged.
	CreationFlags uint32

	// Wait blocks until the child exits instead of detaching.
	Wait bool

	// Console reports failures on stdout followed by a keypress pause
	// instead of a modal dialog.
	Console bool
}

var (
	// Release starts the windowless interpreter and detaches from it.
	Release = Mode{
		Name:          "release",
		Interpreter:   layout.ReleaseInterpreter,
		CreationFlags: CreateNoWindow,
	}

	// Debug starts the console interpreter and keeps the console open until
	// the child exits.
	Debug = Mode{
		Name:        "debug",
		Interpreter: layout.DebugInterpreter,
		Wait:        true,
		Console:     true,
	}
)

func (m Mode) String() string {
	return m.Name
}
