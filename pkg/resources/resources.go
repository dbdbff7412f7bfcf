// Package resources builds the Windows resources of the launcher executable:
// application manifest, version information and icon.
//
// The resources go either into a COFF object picked up by `go build`
// (WriteObject) or straight into an already built executable (Stamp).
package resources

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"
	"github.com/tc-hib/winres/version"
)

var (
	ErrInvalidVersion = errors.New("❌ invalid version")
	ErrInvalidArch    = errors.New("❌ unsupported architecture")
)

const (
	// IconName is the resource name of the application icon
	IconName = "APP"

	// LangEnUS is the language ID of the version strings (0x0409 = en-US)
	LangEnUS = 0x0409
)

// Version info string keys
const (
	keyProductName      = "ProductName"
	keyFileDescription  = "FileDescription"
	keyCompanyName      = "CompanyName"
	keyLegalCopyright   = "LegalCopyright"
	keyOriginalFilename = "OriginalFilename"
	keyInternalName     = "InternalName"
	keyFileVersion      = "FileVersion"
	keyProductVersion   = "ProductVersion"
)

// Options describes the resources to embed.
type Options struct {
	ProductName      string
	Description      string
	CompanyName      string
	Copyright        string
	Version          string // "1.2.3" or "1.2.3.4"
	OriginalFilename string
	IconPath         string // .ico used as is, other images resized
	RequireAdmin     bool
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		ProductName:      "OCR Server",
		Description:      "OCR Server launcher",
		Version:          "0.0.1",
		OriginalFilename: "OCR_Server.exe",
	}
}

// Build assembles the resource set described by opts.
func Build(opts Options, logger hclog.Logger) (*winres.ResourceSet, error) {
	ver, err := ParseVersion(opts.Version)
	if err != nil {
		return nil, err
	}

	rs := &winres.ResourceSet{}

	rs.SetManifest(manifest(opts, ver))
	logger.Debug("📜 Manifest set", "name", opts.ProductName, "long_path_aware", true)

	vi, err := versionInfo(opts, ver)
	if err != nil {
		return nil, err
	}
	rs.SetVersionInfo(*vi)
	logger.Debug("🏷️ Version info set", "version", FormatVersion(ver))

	if opts.IconPath != "" {
		icon, err := loadIcon(opts.IconPath)
		if err != nil {
			return nil, err
		}
		if err := rs.SetIcon(winres.Name(IconName), icon); err != nil {
			return nil, fmt.Errorf("failed to set icon: %w", err)
		}
		logger.Debug("🖼️ Icon set", "path", opts.IconPath)
	}

	return rs, nil
}

// WriteObject writes rs as a COFF object for arch ("386", "amd64", "arm64").
func WriteObject(rs *winres.ResourceSet, w io.Writer, arch string) error {
	var a winres.Arch
	switch arch {
	case "386":
		a = winres.ArchI386
	case "amd64":
		a = winres.ArchAMD64
	case "arm":
		a = winres.ArchARM
	case "arm64":
		a = winres.ArchARM64
	default:
		return fmt.Errorf("%w: %s", ErrInvalidArch, arch)
	}
	return rs.WriteObject(w, a)
}

// ParseVersion parses up to four dot separated numbers.
func ParseVersion(s string) ([4]uint16, error) {
	var v [4]uint16
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return v, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return v, fmt.Errorf("%w: %s", ErrInvalidVersion, s)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return v, fmt.Errorf("%w: %s", ErrInvalidVersion, s)
		}
		v[i] = uint16(n)
	}
	return v, nil
}

// FormatVersion renders a four part version.
func FormatVersion(v [4]uint16) string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}

func manifest(opts Options, ver [4]uint16) winres.AppManifest {
	level := winres.AsInvoker
	if opts.RequireAdmin {
		level = winres.RequireAdministrator
	}
	return winres.AppManifest{
		Identity: winres.AssemblyIdentity{
			Name:    identityName(opts.ProductName),
			Version: ver,
		},
		Description:         opts.Description,
		Compatibility:       winres.Win7AndAbove,
		ExecutionLevel:      level,
		DPIAwareness:        winres.DPIPerMonitorV2,
		LongPathAware:       true,
		UseCommonControlsV6: true,
	}
}

func versionInfo(opts Options, ver [4]uint16) (*version.Info, error) {
	vi := &version.Info{
		FileVersion:    ver,
		ProductVersion: ver,
	}

	strs := map[string]string{
		keyProductName:      opts.ProductName,
		keyFileDescription:  opts.Description,
		keyCompanyName:      opts.CompanyName,
		keyLegalCopyright:   opts.Copyright,
		keyOriginalFilename: opts.OriginalFilename,
		keyInternalName:     strings.TrimSuffix(opts.OriginalFilename, filepath.Ext(opts.OriginalFilename)),
		keyFileVersion:      FormatVersion(ver),
		keyProductVersion:   FormatVersion(ver),
	}
	for key, value := range strs {
		if value == "" {
			continue
		}
		if err := vi.Set(LangEnUS, key, value); err != nil {
			return nil, fmt.Errorf("failed to set version string %s: %w", key, err)
		}
	}
	return vi, nil
}

// identityName turns a product name into an assembly identity name.
func identityName(product string) string {
	if product == "" {
		return "bootlauncher"
	}
	return strings.ReplaceAll(strings.TrimSpace(product), " ", ".")
}

func loadIcon(path string) (*winres.Icon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".ico") {
		icon, err := winres.LoadICO(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load icon %s: %w", path, err)
		}
		return icon, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon image %s: %w", path, err)
	}
	icon, err := winres.NewIconFromResizedImage(img, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resize icon image %s: %w", path, err)
	}
	return icon, nil
}
