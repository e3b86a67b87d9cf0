// Package paths centralizes the on-disk layout under the destination
// directory. Everything vcfetch writes lives either in <base>/Downloads
// (installers, tool caches, ledger) or in <base>/vcruntime_<version>.
package paths

import (
	"path/filepath"

	"github.com/quantmind-br/vcfetch/internal/catalog"
)

// Layout resolves paths under a destination base directory.
type Layout struct {
	base string
}

// NewLayout creates a Layout rooted at base.
func NewLayout(base string) Layout {
	return Layout{base: base}
}

// Base returns the destination base directory.
func (l Layout) Base() string {
	return l.base
}

// DownloadsDir is the pre-existing cache directory the tool requires.
// vcfetch never creates it; its absence fails a run up front.
func (l Layout) DownloadsDir() string {
	return filepath.Join(l.base, "Downloads")
}

// InstallerPath is the cached download location for a runtime installer.
func (l Layout) InstallerPath(rt catalog.Runtime) string {
	return filepath.Join(l.DownloadsDir(), rt.InstallerName())
}

// OutputDir is the per-version directory the runtime DLLs expand into.
// Non-emptiness of this directory marks the version as done.
func (l Layout) OutputDir(version string) string {
	return filepath.Join(l.base, "vcruntime_"+version)
}

// SevenZipBootstrap is the stand-alone 7zr.exe used only to unpack the
// full 7-Zip console tools archive.
func (l Layout) SevenZipBootstrap() string {
	return filepath.Join(l.DownloadsDir(), "__7zr.exe")
}

// SevenZipArchive is the downloaded 7-Zip "extra" console tools archive.
func (l Layout) SevenZipArchive() string {
	return filepath.Join(l.DownloadsDir(), "7z2301-extra.7z")
}

// SevenZipDir is where the console tools archive unpacks to.
func (l Layout) SevenZipDir() string {
	return filepath.Join(l.DownloadsDir(), "__7z")
}

// SevenZipExe is the full-featured console extractor inside SevenZipDir.
func (l Layout) SevenZipExe() string {
	return filepath.Join(l.SevenZipDir(), "7za.exe")
}

// WixZip is the downloaded WiX binaries archive.
func (l Layout) WixZip() string {
	return filepath.Join(l.DownloadsDir(), "__wix.zip")
}

// WixDir is the unpacked WiX toolset directory.
func (l Layout) WixDir() string {
	return filepath.Join(l.DownloadsDir(), "__wix")
}

// DarkExe is the WiX bundle unpacker inside WixDir.
func (l Layout) DarkExe() string {
	return filepath.Join(l.WixDir(), "dark.exe")
}

// HistoryDB is the sqlite fetch-history ledger.
func (l Layout) HistoryDB() string {
	return filepath.Join(l.DownloadsDir(), "__vcfetch.db")
}
