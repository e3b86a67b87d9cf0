// Package tools ensures the auxiliary extraction tool installs exist under
// the Downloads directory: the 7-Zip console tools for legacy installers
// and the WiX toolset for Burn bundles. Both are create-once caches reused
// across runs.
package tools

import (
	"context"
	"fmt"

	"github.com/quantmind-br/vcfetch/internal/fetcher"
	"github.com/quantmind-br/vcfetch/internal/fsops"
	"github.com/quantmind-br/vcfetch/internal/helpers"
	"github.com/quantmind-br/vcfetch/internal/paths"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// 7zr.exe is a small stand-alone extractor that can only read .7z; it
	// bootstraps the "extra" archive holding the full console tool set.
	sevenZipBootstrapURL = "https://7-zip.org/a/7zr.exe"
	sevenZipExtraURL     = "https://7-zip.org/a/7z2301-extra.7z"

	wixBinariesURL = "https://github.com/wixtoolset/wix3/releases/download/wix3111rtm/wix311-binaries.zip"
)

// Manager downloads and unpacks the tool dependencies on first use.
type Manager struct {
	fs     afero.Fs
	runner helpers.CommandRunner
	dl     *fetcher.Downloader
	layout paths.Layout
	log    *zerolog.Logger

	bootstrapURL string
	extraURL     string
	wixURL       string
}

// URLs holds the tool download locations.
type URLs struct {
	SevenZipBootstrap string
	SevenZipExtra     string
	WixBinaries       string
}

// New creates a Manager with the default tool download locations.
func New(fs afero.Fs, runner helpers.CommandRunner, dl *fetcher.Downloader, layout paths.Layout, log *zerolog.Logger) *Manager {
	return NewWithURLs(fs, runner, dl, layout, log, URLs{
		SevenZipBootstrap: sevenZipBootstrapURL,
		SevenZipExtra:     sevenZipExtraURL,
		WixBinaries:       wixBinariesURL,
	})
}

// NewWithURLs creates a Manager downloading the tools from custom
// locations (for tests).
func NewWithURLs(fs afero.Fs, runner helpers.CommandRunner, dl *fetcher.Downloader, layout paths.Layout, log *zerolog.Logger, urls URLs) *Manager {
	return &Manager{
		fs:     fs,
		runner: runner,
		dl:     dl,
		layout: layout,
		log:    log,

		bootstrapURL: urls.SevenZipBootstrap,
		extraURL:     urls.SevenZipExtra,
		wixURL:       urls.WixBinaries,
	}
}

// SevenZip ensures the full-featured 7-Zip console extractor is installed
// and returns its path. The bootstrap extractor unpacks the console tools
// archive once; later runs find the directory already in place.
func (m *Manager) SevenZip(ctx context.Context) (string, error) {
	bootstrap := m.layout.SevenZipBootstrap()
	if err := m.dl.Fetch(ctx, m.bootstrapURL, bootstrap); err != nil {
		return "", fmt.Errorf("fetch 7-Zip bootstrap: %w", err)
	}

	archive := m.layout.SevenZipArchive()
	if err := m.dl.Fetch(ctx, m.extraURL, archive); err != nil {
		return "", fmt.Errorf("fetch 7-Zip tools archive: %w", err)
	}

	toolsDir := m.layout.SevenZipDir()
	if !fsops.IsDir(m.fs, toolsDir) {
		m.log.Info().Str("dir", toolsDir).Msg("unpacking 7-Zip console tools")
		if _, err := m.runner.RunCommand(ctx, bootstrap, "x", archive, "-o"+toolsDir, "-aoa"); err != nil {
			return "", fmt.Errorf("unpack 7-Zip tools archive: %w", err)
		}
	}

	exe := m.layout.SevenZipExe()
	if !fsops.Exists(m.fs, exe) {
		return "", fmt.Errorf("7-Zip console extractor missing after unpack: %s", exe)
	}

	return exe, nil
}

// Wix ensures the WiX toolset is installed and returns its directory.
// Extraction is keyed on dark.exe presence, so an intact install is never
// re-extracted.
func (m *Manager) Wix(ctx context.Context) (string, error) {
	zipPath := m.layout.WixZip()
	if err := m.dl.Fetch(ctx, m.wixURL, zipPath); err != nil {
		return "", fmt.Errorf("fetch WiX binaries: %w", err)
	}

	dark := m.layout.DarkExe()
	if !fsops.Exists(m.fs, dark) {
		wixDir := m.layout.WixDir()
		m.log.Info().Str("dir", wixDir).Msg("unpacking WiX toolset")
		if err := fsops.EnsureDir(m.fs, wixDir, 0755); err != nil {
			return "", err
		}
		if err := helpers.ExtractZip(zipPath, wixDir); err != nil {
			return "", fmt.Errorf("unpack WiX binaries: %w", err)
		}
	}

	if !fsops.Exists(m.fs, dark) {
		return "", fmt.Errorf("WiX dark tool missing after unpack: %s", dark)
	}

	return m.layout.WixDir(), nil
}
