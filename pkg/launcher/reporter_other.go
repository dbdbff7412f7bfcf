//go:build !windows

package launcher

import (
	"fmt"
	"os"
)

// DialogReporter has no dialog primitive outside Windows; the message goes
// to stderr under its title.
type DialogReporter struct {
	Title string
}

func (r DialogReporter) Report(message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", r.Title, message)
}
