//go:build windows

package launcher

import (
	"golang.org/x/sys/windows"
)

// DialogReporter shows a modal error box with a single OK button.
type DialogReporter struct {
	Title string
}

func (r DialogReporter) Report(message string) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	caption, err := windows.UTF16PtrFromString(r.Title)
	if err != nil {
		return
	}
	_, _ = windows.MessageBox(0, text, caption, windows.MB_OK|windows.MB_ICONERROR)
}
