package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajor(t *testing.T) {
	assert.Equal(t, 9, Runtime{Version: "9.0.30729.4148"}.Major())
	assert.Equal(t, 14, Runtime{Version: "14.42.34438.0"}.Major())
	assert.Equal(t, 0, Runtime{Version: "garbage"}.Major())
}

func TestStrategyDispatch(t *testing.T) {
	tests := []struct {
		version string
		want    Strategy
	}{
		{"9.0.30729.4148", StrategyLegacy},
		{"10.0.40219.32503", StrategyUnsupported},
		{"11.0.61030.0", StrategyBundle},
		{"12.0.30501.0", StrategyBundle},
		{"14.42.34438.0", StrategyBundle},
		{"bogus", StrategyUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, Runtime{Version: tt.version}.Strategy())
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "legacy", StrategyLegacy.String())
	assert.Equal(t, "bundle", StrategyBundle.String())
	assert.Equal(t, "unsupported", StrategyUnsupported.String())
}

func TestInstallerName(t *testing.T) {
	rt := Runtime{
		Version: "14.42.34438.0",
		URL:     "https://example.com/download/pr/abc/VC_redist.x64.exe",
	}
	assert.Equal(t, "14.42.34438.0_VC_redist.x64.exe", rt.InstallerName())
}

func TestCatalogVersionsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, rt := range All() {
		assert.False(t, seen[rt.Version], "duplicate version %s", rt.Version)
		seen[rt.Version] = true
		assert.NotEmpty(t, rt.URL)
	}
}

func TestFilterExcludesOldVersions(t *testing.T) {
	for _, rt := range Filter(false) {
		assert.GreaterOrEqual(t, rt.Major(), 14)
	}
	assert.Len(t, Filter(true), len(All()))
	assert.Greater(t, len(Filter(true)), len(Filter(false)))
}

func TestFind(t *testing.T) {
	rt, ok := Find("10.0.40219.32503")
	require.True(t, ok)
	assert.Equal(t, StrategyUnsupported, rt.Strategy())

	_, ok = Find("1.2.3")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	all := Search("")
	assert.Len(t, all, len(All()))

	hits := Search("14.42")
	require.NotEmpty(t, hits)
	for _, rt := range hits {
		assert.Contains(t, rt.Version, "14")
	}
}

func TestProductName(t *testing.T) {
	assert.Equal(t, "Visual C++ 2010", Runtime{Version: "10.0.40219.32503"}.ProductName())
	assert.Equal(t, "Visual C++ 2015-2022", Runtime{Version: "14.0.23026.0"}.ProductName())
	assert.Equal(t, "Visual C++ 2008", Runtime{Version: "9.0.30729.4148"}.ProductName())
}
