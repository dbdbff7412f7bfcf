package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ocr-server/bootlauncher/internal/layout"
	"github.com/ocr-server/bootlauncher/pkg/resources"
	"github.com/ocr-server/bootlauncher/pkg/utils/winargs"
	"github.com/spf13/pflag"
)

func makeDist(t *testing.T, interpreters ...string) string {
	t.Helper()
	dir := t.TempDir()
	populateDist(t, dir, interpreters...)
	return dir
}

func populateDist(t *testing.T, dir string, interpreters ...string) {
	t.Helper()
	for _, d := range []string{layout.RuntimeDirName, layout.PackagesDirName} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	files := []string{layout.BootScriptName}
	for _, bin := range interpreters {
		files = append(files, filepath.Join(layout.RuntimeDirName, bin))
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunCheck_Complete(t *testing.T) {
	dir := makeDist(t, layout.ReleaseInterpreter)

	var out bytes.Buffer
	if err := runCheck(&out, dir, []string{layout.ReleaseInterpreter}); err != nil {
		t.Fatalf("runCheck failed: %v\n%s", err, out.String())
	}
	if strings.Contains(out.String(), "❌") {
		t.Errorf("unexpected failure line:\n%s", out.String())
	}
}

func TestRunCheck_MissingInterpreter(t *testing.T) {
	dir := makeDist(t, layout.ReleaseInterpreter)

	var out bytes.Buffer
	err := runCheck(&out, dir, []string{layout.ReleaseInterpreter, layout.DebugInterpreter})
	if !errors.Is(err, errIncomplete) {
		t.Fatalf("runCheck error = %v, want errIncomplete", err)
	}
	if !strings.Contains(out.String(), "python.exe") || !strings.Contains(out.String(), "missing file") {
		t.Errorf("missing entry not reported:\n%s", out.String())
	}
}

func TestRunCheck_UnquotablePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Windows file names cannot contain a double quote")
	}

	dir := filepath.Join(t.TempDir(), `dist"1`)
	populateDist(t, dir, layout.ReleaseInterpreter)

	var out bytes.Buffer
	err := runCheck(&out, dir, []string{layout.ReleaseInterpreter})
	if !errors.Is(err, errUnquotable) || !errors.Is(err, winargs.ErrEmbeddedQuote) {
		t.Fatalf("runCheck error = %v, want errUnquotable wrapping ErrEmbeddedQuote", err)
	}
	if !strings.Contains(out.String(), "command line") {
		t.Errorf("quoting problem not reported:\n%s", out.String())
	}
}

func TestCheckCommand_Debug(t *testing.T) {
	dir := makeDist(t, layout.DebugInterpreter)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", dir, "--debug"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("check --debug failed: %v\n%s", err, out.String())
	}

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", dir})
	if err := cmd.Execute(); !errors.Is(err, errIncomplete) {
		t.Errorf("check without pythonw.exe error = %v, want errIncomplete", err)
	}
}

func TestAddResourceFlags(t *testing.T) {
	opts := resources.DefaultOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addResourceFlags(fs, &opts)

	err := fs.Parse([]string{"--version", "2.1", "--product", "Scanner", "--require-admin"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if opts.Version != "2.1" || opts.ProductName != "Scanner" || !opts.RequireAdmin {
		t.Errorf("options not bound: %+v", opts)
	}
	if opts.OriginalFilename != resources.DefaultOptions().OriginalFilename {
		t.Errorf("default overwritten: %q", opts.OriginalFilename)
	}
}

func TestSysoCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rsrc.syso")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "error", "syso", "--out", out, "--arch", "amd64", "--version", "3.0.0"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("syso failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("object file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("object file is empty")
	}
}

func TestSysoCommand_BadArch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rsrc.syso")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "error", "syso", "--out", out, "--arch", "sparc"})
	if err := cmd.Execute(); !errors.Is(err, resources.ErrInvalidArch) {
		t.Fatalf("syso error = %v, want ErrInvalidArch", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("partial object file left behind")
	}
}

func TestRootVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-V"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "bootlauncher-res "+version) {
		t.Errorf("version output = %q", out.String())
	}
}
