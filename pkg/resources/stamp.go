package resources

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"
	"github.com/tc-hib/winres/version"
)

// Stamp merges rs into the resources of an existing executable.
//
// The executable is rewritten into a temporary file next to it, which then
// replaces the original atomically.
func Stamp(exePath string, rs *winres.ResourceSet, logger hclog.Logger) error {
	logger.Info("Stamping resources into executable", "exe", exePath)

	// Open the EXE file for reading
	inputFile, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to open EXE for reading: %w", err)
	}
	// Note: Explicit close below, no defer needed

	// Load existing resources from the EXE
	existing, err := winres.LoadFromEXE(inputFile)
	if err != nil {
		logger.Debug("Creating new resource set (no existing resources)")
		existing = &winres.ResourceSet{}
	} else {
		logger.Debug("Loaded existing resources from EXE")
	}

	var setErr error
	rs.Walk(func(typeID, resID winres.Identifier, langID uint16, data []byte) bool {
		setErr = existing.Set(typeID, resID, langID, data)
		return setErr == nil
	})
	if setErr != nil {
		inputFile.Close()
		return fmt.Errorf("failed to merge resources: %w", setErr)
	}

	if _, err := inputFile.Seek(0, 0); err != nil {
		inputFile.Close()
		return fmt.Errorf("failed to rewind EXE: %w", err)
	}

	info, err := inputFile.Stat()
	if err != nil {
		inputFile.Close()
		return fmt.Errorf("failed to stat EXE: %w", err)
	}

	// The replacement keeps the permission bits of the original
	tmpPath := exePath + ".tmp"
	outputFile, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		inputFile.Close()
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	if err := outputFile.Chmod(info.Mode().Perm()); err != nil {
		outputFile.Close()
		inputFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set temporary file mode: %w", err)
	}

	logger.Debug("Writing resources to temporary file", "path", tmpPath)
	if err := existing.WriteToEXE(outputFile, inputFile); err != nil {
		outputFile.Close()
		inputFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write resources to EXE: %w", err)
	}

	// Close files explicitly (MUST happen before the replace on Windows)
	if err := outputFile.Close(); err != nil {
		inputFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := inputFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close input file: %w", err)
	}

	if err := atomicReplace(tmpPath, exePath, logger); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace EXE atomically: %w", err)
	}

	logger.Info("✅ Stamped resources", "exe", exePath)
	return nil
}

// Description summarizes the resources found in an executable.
type Description struct {
	Resources      int
	HasManifest    bool
	HasIcon        bool
	FileVersion    string
	ProductVersion string
}

// Describe reads back the resources of an executable.
func Describe(exePath string) (*Description, error) {
	f, err := os.Open(exePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open EXE: %w", err)
	}
	defer f.Close()

	rs, err := winres.LoadFromEXE(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	return describeSet(rs)
}

func describeSet(rs *winres.ResourceSet) (*Description, error) {
	d := &Description{}
	var versionData []byte

	rs.Walk(func(typeID, resID winres.Identifier, langID uint16, data []byte) bool {
		d.Resources++
		switch typeID {
		case winres.RT_MANIFEST:
			d.HasManifest = true
		case winres.RT_GROUP_ICON:
			d.HasIcon = true
		case winres.RT_VERSION:
			if versionData == nil {
				versionData = data
			}
		}
		return true
	})

	if versionData != nil {
		vi, err := version.FromBytes(versionData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse version info: %w", err)
		}
		d.FileVersion = FormatVersion(vi.FileVersion)
		d.ProductVersion = FormatVersion(vi.ProductVersion)
	}
	return d, nil
}
