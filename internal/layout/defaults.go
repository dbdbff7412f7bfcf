package layout

// =================================
// Runtime directory entries
// =================================
const (
	BootScriptName  = "boot.py"
	RuntimeDirName  = "base_env"
	PackagesDirName = "site_packages"
)

// =================================
// Interpreter variants
// =================================
const (
	ReleaseInterpreter = "pythonw.exe" // attaches to no console
	DebugInterpreter   = "python.exe"  // attaches to the inherited console
)

// SearchPathVar is the interpreter's module search path variable.
const SearchPathVar = "PYTHONPATH"
