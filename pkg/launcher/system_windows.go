//go:build windows

package launcher

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// maxLongPath bounds the module file name buffer (\\?\ paths).
const maxLongPath = 32768

// Executable queries GetModuleFileName, growing the buffer until the path
// is no longer truncated.
func (OS) Executable() (string, error) {
	size := uint32(windows.MAX_PATH)
	for {
		buf := make([]uint16, size)
		n, err := windows.GetModuleFileName(0, &buf[0], size)
		if err != nil {
			return "", err
		}
		if n < size {
			return windows.UTF16ToString(buf[:n]), nil
		}
		if size >= maxLongPath {
			return "", windows.ERROR_INSUFFICIENT_BUFFER
		}
		size *= 2
	}
}

func (OS) Exists(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	return err == nil && attrs != windows.INVALID_FILE_ATTRIBUTES
}

func (OS) Spawn(cmdLine string, creationFlags uint32) (Process, error) {
	// CreateProcessW may write into the command line buffer
	argv, err := windows.UTF16FromString(cmdLine)
	if err != nil {
		return nil, err
	}

	var si windows.StartupInfo
	si.Cb = uint32(unsafe.Sizeof(si))
	var pi windows.ProcessInformation

	err = windows.CreateProcess(
		nil,      // no module name, use the command line
		&argv[0], // command line
		nil,      // process handle not inheritable
		nil,      // thread handle not inheritable
		false,    // no handle inheritance
		creationFlags,
		nil, // parent environment
		nil, // parent working directory
		&si,
		&pi,
	)
	if err != nil {
		return nil, err
	}

	return &winProcess{info: pi}, nil
}

type winProcess struct {
	info windows.ProcessInformation
}

func (p *winProcess) Pid() int {
	return int(p.info.ProcessId)
}

func (p *winProcess) Wait() error {
	event, err := windows.WaitForSingleObject(p.info.Process, windows.INFINITE)
	if err != nil {
		return err
	}
	if event != windows.WAIT_OBJECT_0 {
		return fmt.Errorf("unexpected wait result %#x", event)
	}
	return nil
}

func (p *winProcess) ExitCode() (uint32, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(p.info.Process, &code); err != nil {
		return 0, err
	}
	return code, nil
}

// Close releases the thread and process handles; it is safe to call twice.
func (p *winProcess) Close() error {
	var errs []error
	if p.info.Thread != 0 {
		errs = append(errs, windows.CloseHandle(p.info.Thread))
		p.info.Thread = 0
	}
	if p.info.Process != 0 {
		errs = append(errs, windows.CloseHandle(p.info.Process))
		p.info.Process = 0
	}
	return errors.Join(errs...)
}
