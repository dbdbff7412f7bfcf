package layout

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Style describes the path syntax used to decompose the launcher image path
// and to compose the runtime paths next to it.
type Style struct {
	Separator     byte
	ListSeparator byte
	windows       bool
}

var (
	// Windows is the target OS syntax: backslash (or slash) separators, drive
	// letters, UNC shares and the \\?\ long path prefix.
	Windows = Style{Separator: '\\', ListSeparator: ';', windows: true}

	// Native is the syntax of the host the binary runs on.
	Native = Style{
		Separator:     filepath.Separator,
		ListSeparator: filepath.ListSeparator,
		windows:       runtime.GOOS == "windows",
	}
)

// IsSeparator reports whether c separates path elements.
func (s Style) IsSeparator(c byte) bool {
	if s.windows {
		return c == '\\' || c == '/'
	}
	return c == '/'
}

// VolumeName returns the leading volume of path: "C:", `\\server\share`,
// `\\?\C:` or `\\?\UNC\server\share`. It is always empty for Unix syntax.
func (s Style) VolumeName(path string) string {
	if !s.windows {
		return ""
	}
	if hasDrive(path) {
		return path[:2]
	}
	if len(path) < 3 || !s.IsSeparator(path[0]) || !s.IsSeparator(path[1]) {
		return ""
	}

	// Device and long path namespaces: \\?\ and \\.\
	if len(path) >= 4 && (path[2] == '?' || path[2] == '.') && s.IsSeparator(path[3]) {
		rest := path[4:]
		switch {
		case hasDrive(rest):
			return path[:6]
		case len(rest) >= 4 && strings.EqualFold(rest[:3], "UNC") && s.IsSeparator(rest[3]):
			return path[:8] + rest[4:4+s.shareLen(rest[4:])]
		default:
			n := 0
			for n < len(rest) && !s.IsSeparator(rest[n]) {
				n++
			}
			return path[:4+n]
		}
	}

	if s.IsSeparator(path[2]) {
		return ""
	}
	return path[:2+s.shareLen(path[2:])]
}

// IsAbs reports whether path is absolute in this syntax. A drive-relative
// path such as "C:app" is not.
func (s Style) IsAbs(path string) bool {
	if !s.windows {
		return strings.HasPrefix(path, "/")
	}
	vol := s.VolumeName(path)
	if vol == "" {
		return false
	}
	if !hasDrive(vol) {
		return true
	}
	rest := path[len(vol):]
	return rest != "" && s.IsSeparator(rest[0])
}

// shareLen returns the length of the "server\share" prefix of p.
func (s Style) shareLen(p string) int {
	n := 0
	for n < len(p) && !s.IsSeparator(p[n]) {
		n++
	}
	if n == len(p) {
		return n
	}
	n++
	for n < len(p) && !s.IsSeparator(p[n]) {
		n++
	}
	return n
}

func hasDrive(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0] | 0x20
	return c >= 'a' && c <= 'z'
}
