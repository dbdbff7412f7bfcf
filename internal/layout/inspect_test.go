package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLayout(t *testing.T, dir string, interpreters ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, RuntimeDirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, PackagesDirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, BootScriptName), []byte("print('boot')\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, binary := range interpreters {
		if err := os.WriteFile(filepath.Join(dir, RuntimeDirName, binary), []byte("MZ"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestInspect_CompleteLayout(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, ReleaseInterpreter, DebugInterpreter)

	p, err := FromDir(Native, dir)
	if err != nil {
		t.Fatalf("FromDir failed: %v", err)
	}

	findings := Inspect(p, ReleaseInterpreter, DebugInterpreter)
	if len(findings) != 5 {
		t.Fatalf("got %d findings, want 5", len(findings))
	}
	if missing := Missing(findings); len(missing) != 0 {
		t.Errorf("unexpected missing entries: %+v", missing)
	}
}

func TestInspect_MissingInterpreter(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, DebugInterpreter)

	p, err := FromDir(Native, dir)
	if err != nil {
		t.Fatalf("FromDir failed: %v", err)
	}

	missing := Missing(Inspect(p))
	if len(missing) != 1 {
		t.Fatalf("got %d missing entries, want 1: %+v", len(missing), missing)
	}
	if missing[0].Name != RuntimeDirName+"/"+ReleaseInterpreter {
		t.Errorf("missing entry = %q, want the release interpreter", missing[0].Name)
	}
	if missing[0].Present {
		t.Error("missing entry reported as present")
	}
}

func TestInspect_WrongKind(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, ReleaseInterpreter)

	// site_packages replaced by a regular file
	pkgs := filepath.Join(dir, PackagesDirName)
	if err := os.Remove(pkgs); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pkgs, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := FromDir(Native, dir)
	if err != nil {
		t.Fatalf("FromDir failed: %v", err)
	}

	missing := Missing(Inspect(p))
	if len(missing) != 1 || missing[0].Name != PackagesDirName {
		t.Fatalf("unexpected findings: %+v", missing)
	}
	if !missing[0].Present || missing[0].Problem == "" {
		t.Errorf("expected a kind problem, got %+v", missing[0])
	}
}

func TestInspect_DoesNotCreateFiles(t *testing.T) {
	dir := t.TempDir()

	p, err := FromDir(Native, dir)
	if err != nil {
		t.Fatalf("FromDir failed: %v", err)
	}
	Inspect(p, ReleaseInterpreter, DebugInterpreter)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Inspect created %d entries", len(entries))
	}
}
