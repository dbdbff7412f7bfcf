// Package layout derives the runtime directory layout from the launcher's own
// image path.
//
// Every path is composed by textual concatenation against the base directory,
// which always ends in a separator:
//
//	<base>boot.py
//	<base>base_env\<interpreter>
//	<base>site_packages
package layout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyImage    = errors.New("❌ empty image path")
	ErrRelativeImage = errors.New("❌ image path is not absolute")
	ErrNoDirectory   = errors.New("❌ image path has no directory component")
)

// Split decomposes path into volume, directory, file name and extension the
// way the C runtime's _splitpath does. dir keeps its trailing separator and
// ext keeps its leading dot.
func Split(s Style, path string) (volume, dir, name, ext string) {
	volume = s.VolumeName(path)
	rest := path[len(volume):]

	i := len(rest) - 1
	for i >= 0 && !s.IsSeparator(rest[i]) {
		i--
	}
	dir = rest[:i+1]
	file := rest[i+1:]

	if dot := strings.LastIndexByte(file, '.'); dot >= 0 {
		return volume, dir, file[:dot], file[dot:]
	}
	return volume, dir, file, ""
}

// Paths holds the image path and the base directory derived from it.
type Paths struct {
	style Style
	image string
	base  string
}

// New derives the layout from the absolute path of the running image.
func New(s Style, imagePath string) (*Paths, error) {
	if imagePath == "" {
		return nil, ErrEmptyImage
	}
	if !s.IsAbs(imagePath) {
		return nil, fmt.Errorf("%w: %s", ErrRelativeImage, imagePath)
	}

	volume, dir, _, _ := Split(s, imagePath)
	if dir == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoDirectory, imagePath)
	}

	return &Paths{
		style: s,
		image: imagePath,
		base:  volume + dir,
	}, nil
}

// FromDir builds a layout rooted at an absolute directory. A missing trailing
// separator is added.
func FromDir(s Style, dir string) (*Paths, error) {
	if dir == "" || !s.IsAbs(dir) {
		return nil, fmt.Errorf("%w: %q", ErrRelativeImage, dir)
	}
	if !s.IsSeparator(dir[len(dir)-1]) {
		dir += string(s.Separator)
	}
	return &Paths{style: s, base: dir}, nil
}

// ==================== Derived Paths ====================

// Image returns the launcher image path (empty for FromDir layouts).
func (p *Paths) Image() string {
	return p.image
}

// Base returns the launcher directory, trailing separator included.
func (p *Paths) Base() string {
	return p.base
}

// RuntimeDir returns the bundled interpreter directory.
func (p *Paths) RuntimeDir() string {
	return p.base + RuntimeDirName
}

// Interpreter returns the path of the given interpreter binary inside the
// runtime directory.
func (p *Paths) Interpreter(binary string) string {
	return p.RuntimeDir() + string(p.style.Separator) + binary
}

// BootScript returns the bootstrap script path.
func (p *Paths) BootScript() string {
	return p.base + BootScriptName
}

// Packages returns the site packages directory.
func (p *Paths) Packages() string {
	return p.base + PackagesDirName
}

// SearchPath returns the module search path value: the packages directory
// then the base directory, joined by the list separator.
func (p *Paths) SearchPath() string {
	return p.Packages() + string(p.style.ListSeparator) + p.base
}
