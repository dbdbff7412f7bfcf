package launcher

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Reporter shows a fatal message to the user.
type Reporter interface {
	Report(message string)
}

const (
	dialogTitle = "Error"
	pausePrompt = "Press any key to continue . . . "
)

// ConsoleReporter prints the message and blocks until a key is pressed,
// keeping a console window open long enough to be read.
type ConsoleReporter struct {
	Out io.Writer
	In  io.Reader
}

// NewConsoleReporter reports on stdout and pauses on stdin.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{Out: os.Stdout, In: os.Stdin}
}

func (r *ConsoleReporter) Report(message string) {
	fmt.Fprintln(r.Out, message)
	r.pause()
}

func (r *ConsoleReporter) pause() {
	fmt.Fprint(r.Out, pausePrompt)
	defer fmt.Fprintln(r.Out)

	if r.In == nil {
		return
	}

	// A terminal only delivers input per line unless switched to raw mode
	if f, ok := r.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if state, err := term.MakeRaw(int(f.Fd())); err == nil {
			defer term.Restore(int(f.Fd()), state)
		}
	}

	var key [1]byte
	_, _ = r.In.Read(key[:])
}

func defaultReporter(m Mode) Reporter {
	if m.Console {
		return NewConsoleReporter()
	}
	return DialogReporter{Title: dialogTitle}
}
