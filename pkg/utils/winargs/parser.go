// Package winargs builds and parses Windows process command lines.
//
// Join produces the launcher's command line: every argument wrapped in double
// quotes, nothing escaped. Split parses a command line the conventional way
// (CommandLineToArgvW), so a composed line can be checked against what the
// child will actually receive.
package winargs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnclosedQuote is returned when a quoted argument is not terminated
	ErrUnclosedQuote = errors.New("unclosed quote in command line")

	// ErrEmbeddedQuote is returned by Check for arguments that cannot be
	// passed through plain double quoting
	ErrEmbeddedQuote = errors.New("argument contains a double quote")
)

// Quote wraps arg in double quotes. No escaping is performed; arguments are
// expected to be file paths, which cannot contain a double quote on Windows.
func Quote(arg string) string {
	return `"` + arg + `"`
}

// Join quotes every argument and joins them with single spaces.
//
// Examples:
//
//	Join([]string{`C:\app\python.exe`, `C:\app\boot.py`}) => `"C:\app\python.exe" "C:\app\boot.py"`
func Join(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = Quote(arg)
	}
	return strings.Join(parts, " ")
}

// Check reports whether every argument survives Quote unchanged through
// Split: no embedded double quote and no trailing backslash. Join does not
// call it; distribution checks do.
func Check(args ...string) error {
	for _, arg := range args {
		if strings.ContainsRune(arg, '"') {
			return fmt.Errorf("%w: %s", ErrEmbeddedQuote, arg)
		}
		if strings.HasSuffix(arg, `\`) {
			return fmt.Errorf("%w: trailing backslash escapes the closing quote: %s", ErrEmbeddedQuote, arg)
		}
	}
	return nil
}

// Split parses a command line into arguments.
//
// Parsing rules:
//   - The program name ends at the next whitespace, or at the closing quote
//     when it starts with one; backslashes in it are literal
//   - Other arguments are separated by spaces and tabs outside quotes
//   - 2n backslashes before a quote produce n backslashes and toggle quoting
//   - 2n+1 backslashes before a quote produce n backslashes and a literal quote
//   - Backslashes not followed by a quote are literal
//   - Inside quotes, "" produces a literal quote
func Split(cmdline string) ([]string, error) {
	n := len(cmdline)
	i := 0
	for i < n && isSpace(cmdline[i]) {
		i++
	}
	if i == n {
		return []string{}, nil
	}

	var result []string

	// Program name
	if cmdline[i] == '"' {
		end := strings.IndexByte(cmdline[i+1:], '"')
		if end < 0 {
			return nil, fmt.Errorf("%w: program name", ErrUnclosedQuote)
		}
		result = append(result, cmdline[i+1:i+1+end])
		i += end + 2
	} else {
		start := i
		for i < n && !isSpace(cmdline[i]) {
			i++
		}
		result = append(result, cmdline[start:i])
	}

	var current strings.Builder
	var inQuote, pending bool

	for i < n {
		ch := cmdline[i]

		switch {
		case ch == '\\':
			j := i
			for j < n && cmdline[j] == '\\' {
				j++
			}
			count := j - i
			if j < n && cmdline[j] == '"' {
				current.WriteString(strings.Repeat(`\`, count/2))
				if count%2 == 1 {
					current.WriteByte('"')
					j++
				}
			} else {
				current.WriteString(strings.Repeat(`\`, count))
			}
			pending = true
			i = j

		case ch == '"':
			if inQuote && i+1 < n && cmdline[i+1] == '"' {
				current.WriteByte('"')
				i += 2
				continue
			}
			inQuote = !inQuote
			pending = true
			i++

		case isSpace(ch) && !inQuote:
			if pending {
				result = append(result, current.String())
				current.Reset()
				pending = false
			}
			i++

		default:
			current.WriteByte(ch)
			pending = true
			i++
		}
	}

	if inQuote {
		return nil, ErrUnclosedQuote
	}
	if pending {
		result = append(result, current.String())
	}

	return result, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
