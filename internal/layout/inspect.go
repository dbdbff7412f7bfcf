package layout

import (
	"os"
)

// EntryKind is the expected filesystem type of a layout entry.
type EntryKind int

const (
	File EntryKind = iota
	Directory
)

func (k EntryKind) String() string {
	if k == Directory {
		return "dir"
	}
	return "file"
}

// Finding is the inspection result for one layout entry.
type Finding struct {
	Name     string
	Path     string
	Kind     EntryKind
	Required bool
	Present  bool
	Problem  string
}

// OK reports whether the entry satisfies the layout.
func (f Finding) OK() bool {
	return f.Problem == "" && (f.Present || !f.Required)
}

// Inspect checks the entries the runtime directory is expected to contain.
// It only reads the filesystem. Interpreters lists the binaries expected under
// base_env; with none given the release interpreter is checked.
func Inspect(p *Paths, interpreters ...string) []Finding {
	if len(interpreters) == 0 {
		interpreters = []string{ReleaseInterpreter}
	}

	findings := []Finding{
		inspectEntry(BootScriptName, p.BootScript(), File),
		inspectEntry(RuntimeDirName, p.RuntimeDir(), Directory),
	}
	for _, binary := range interpreters {
		findings = append(findings,
			inspectEntry(RuntimeDirName+"/"+binary, p.Interpreter(binary), File))
	}
	findings = append(findings, inspectEntry(PackagesDirName, p.Packages(), Directory))

	return findings
}

// Missing filters the findings down to the ones that fail the layout.
func Missing(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if !f.OK() {
			out = append(out, f)
		}
	}
	return out
}

func inspectEntry(name, path string, kind EntryKind) Finding {
	f := Finding{Name: name, Path: path, Kind: kind, Required: true}

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.Problem = err.Error()
		}
		return f
	}

	f.Present = true
	if info.IsDir() != (kind == Directory) {
		f.Problem = "expected a " + kind.String()
	}
	return f
}
