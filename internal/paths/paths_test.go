package paths

import (
	"path/filepath"
	"testing"

	"github.com/quantmind-br/vcfetch/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	l := NewLayout("/srv/runtimes")

	assert.Equal(t, "/srv/runtimes", l.Base())
	assert.Equal(t, filepath.Join("/srv/runtimes", "Downloads"), l.DownloadsDir())
	assert.Equal(t, filepath.Join("/srv/runtimes", "vcruntime_14.42.34438.0"), l.OutputDir("14.42.34438.0"))

	dl := l.DownloadsDir()
	assert.Equal(t, filepath.Join(dl, "__7zr.exe"), l.SevenZipBootstrap())
	assert.Equal(t, filepath.Join(dl, "7z2301-extra.7z"), l.SevenZipArchive())
	assert.Equal(t, filepath.Join(dl, "__7z", "7za.exe"), l.SevenZipExe())
	assert.Equal(t, filepath.Join(dl, "__wix.zip"), l.WixZip())
	assert.Equal(t, filepath.Join(dl, "__wix", "dark.exe"), l.DarkExe())
	assert.Equal(t, filepath.Join(dl, "__vcfetch.db"), l.HistoryDB())
}

func TestInstallerPathKeyedByVersion(t *testing.T) {
	l := NewLayout("/srv/runtimes")
	a := catalog.Runtime{Version: "14.40.33810", URL: "https://example.com/x/VC_redist.x64.exe"}
	b := catalog.Runtime{Version: "14.42.34438.0", URL: "https://example.com/y/VC_redist.x64.exe"}

	assert.NotEqual(t, l.InstallerPath(a), l.InstallerPath(b))
	assert.Equal(t, filepath.Join(l.DownloadsDir(), "14.40.33810_VC_redist.x64.exe"), l.InstallerPath(a))
}
