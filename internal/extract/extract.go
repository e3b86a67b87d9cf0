// Package extract unpacks redistributable installers by shelling out to
// the external tools: 7-Zip for the legacy self-extracting installers,
// WiX dark for Burn bundles, and the platform expansion utility for the
// CABs both of them yield. Each call works in a fresh temporary directory
// whose lifetime is owned by the returned cleanup function.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/vcfetch/internal/fsops"
	"github.com/quantmind-br/vcfetch/internal/helpers"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Extractor drives the external extraction tools.
type Extractor struct {
	fs        afero.Fs
	runner    helpers.CommandRunner
	log       *zerolog.Logger
	expandCmd string
}

// New creates an Extractor using the OS filesystem and real processes.
func New(log *zerolog.Logger, expandCmd string) *Extractor {
	return NewWithDeps(log, afero.NewOsFs(), helpers.NewOSCommandRunner(), expandCmd)
}

// NewWithDeps creates an Extractor with injected dependencies (for tests).
func NewWithDeps(log *zerolog.Logger, fs afero.Fs, runner helpers.CommandRunner, expandCmd string) *Extractor {
	return &Extractor{
		fs:        fs,
		runner:    runner,
		log:       log,
		expandCmd: expandCmd,
	}
}

// LegacyCabs extracts the CAB members of a pre-WiX self-extracting
// installer into a fresh temporary directory and returns it together with
// a cleanup function. An installer yielding no CABs is an explicit error;
// a silently empty directory would otherwise look like success downstream.
func (e *Extractor) LegacyCabs(ctx context.Context, sevenZipExe, installer string) (string, func(), error) {
	tmpDir, cleanup, err := e.tempDir()
	if err != nil {
		return "", nil, err
	}

	e.log.Debug().Str("installer", installer).Str("dir", tmpDir).Msg("extracting legacy installer")

	_, err = e.runner.RunCommand(ctx, sevenZipExe, "x", "-o"+tmpDir, installer, "-i!*.cab")
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("extract legacy installer %s: %w", installer, err)
	}

	entries, err := afero.ReadDir(e.fs, tmpDir)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("read extraction output: %w", err)
	}
	if len(entries) == 0 {
		cleanup()
		return "", nil, fmt.Errorf("failed to extract any cabinet file from %s", installer)
	}

	return tmpDir, cleanup, nil
}

// BundleCabs unpacks a WiX Burn bundle and returns the per-architecture
// CAB paths inside it, together with a cleanup function owning the
// temporary directory the paths live in. The bundle layout is fixed:
// AttachedContainer/packages/<name>_amd64/cab1.cab.
func (e *Extractor) BundleCabs(ctx context.Context, wixDir, bundle string) ([]string, func(), error) {
	tmpDir, cleanup, err := e.tempDir()
	if err != nil {
		return nil, nil, err
	}

	e.log.Debug().Str("bundle", bundle).Str("dir", tmpDir).Msg("unpacking burn bundle")

	dark := filepath.Join(wixDir, "dark.exe")
	_, err = e.runner.RunCommand(ctx, dark, "-nologo", "-x", tmpDir, bundle)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("unpack bundle %s: %w", bundle, err)
	}

	cabs, err := e.findBundleCabs(tmpDir, bundle)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return cabs, cleanup, nil
}

func (e *Extractor) findBundleCabs(tmpDir, bundle string) ([]string, error) {
	packagesDir := filepath.Join(tmpDir, "AttachedContainer", "packages")
	entries, err := afero.ReadDir(e.fs, packagesDir)
	if err != nil {
		return nil, fmt.Errorf("bundle %s has no attached packages directory: %w", bundle, err)
	}

	var cabs []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), "_amd64") {
			continue
		}
		cab := filepath.Join(packagesDir, entry.Name(), "cab1.cab")
		if !fsops.Exists(e.fs, cab) {
			return nil, fmt.Errorf("package %s in bundle %s has no cab1.cab", entry.Name(), bundle)
		}
		cabs = append(cabs, cab)
	}

	if len(cabs) == 0 {
		return nil, fmt.Errorf("no amd64 payload packages found in bundle %s", bundle)
	}

	return cabs, nil
}

// ExpandCab expands every member of a CAB into dest using the platform
// file-expansion utility.
func (e *Extractor) ExpandCab(ctx context.Context, cab, dest string) error {
	if _, err := e.runner.RunCommand(ctx, e.expandCmd, "-F:*", cab, dest); err != nil {
		return fmt.Errorf("expand %s: %w", cab, err)
	}
	return nil
}

func (e *Extractor) tempDir() (string, func(), error) {
	tmpDir, err := fsops.CreateTempDir(e.fs, "vcfetch-extract-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		if err := e.fs.RemoveAll(tmpDir); err != nil {
			e.log.Warn().Err(err).Str("dir", tmpDir).Msg("failed to remove temp extraction dir")
		}
	}
	return tmpDir, cleanup, nil
}
