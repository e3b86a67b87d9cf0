// Package catalog holds the known Visual C++ x64 Redistributable releases
// and decides which extraction strategy applies to each of them.
package catalog

import (
	"path"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Runtime is one downloadable redistributable release.
type Runtime struct {
	Version string // dotted numeric version, e.g. "14.42.34438.0"
	URL     string // direct download URL of the x64 installer
}

// Strategy is the closed set of ways an installer can be unpacked.
type Strategy int

const (
	// StrategyUnsupported marks versions with no working extraction method.
	// The orchestrator skips these with an informational message.
	StrategyUnsupported Strategy = iota

	// StrategyLegacy covers the pre-WiX self-extracting installers
	// (major version below 11); their CABs come out via 7-Zip.
	StrategyLegacy

	// StrategyBundle covers WiX Burn bundles (major version 11 and up);
	// they unpack with the WiX dark tool.
	StrategyBundle
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyLegacy:
		return "legacy"
	case StrategyBundle:
		return "bundle"
	default:
		return "unsupported"
	}
}

// Major returns the numeric major version (the text before the first dot).
// A malformed version yields 0, which dispatches to StrategyUnsupported.
func (r Runtime) Major() int {
	prefix, _, _ := strings.Cut(r.Version, ".")
	major, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return major
}

// Strategy picks the extraction strategy for this release. Visual C++ 2010
// nests its CAB at a path depth the legacy strategy cannot reach, so major
// version 10 is explicitly unsupported.
func (r Runtime) Strategy() Strategy {
	major := r.Major()
	switch {
	case major == 10 || major < 9:
		return StrategyUnsupported
	case major < 11:
		return StrategyLegacy
	default:
		return StrategyBundle
	}
}

// ProductName returns the marketing name of the release.
func (r Runtime) ProductName() string {
	switch r.Major() {
	case 9:
		return "Visual C++ 2008"
	case 10:
		return "Visual C++ 2010"
	case 11:
		return "Visual C++ 2012"
	case 12:
		return "Visual C++ 2013"
	case 14:
		return "Visual C++ 2015-2022"
	default:
		return "Visual C++"
	}
}

// InstallerName is the cache filename for the downloaded installer. The
// version prefix keeps releases apart, since Microsoft reuses the basename
// VC_redist.x64.exe across most of them.
func (r Runtime) InstallerName() string {
	return r.Version + "_" + path.Base(r.URL)
}

// All returns every catalog entry in processing order.
func All() []Runtime {
	out := make([]Runtime, len(runtimes))
	copy(out, runtimes)
	return out
}

// Filter returns the catalog, dropping releases older than major version 14
// unless includeOld is set. The first version 14 release is 2015.
func Filter(includeOld bool) []Runtime {
	if includeOld {
		return All()
	}
	var out []Runtime
	for _, rt := range runtimes {
		if rt.Major() >= 14 {
			out = append(out, rt)
		}
	}
	return out
}

// Find looks up a release by exact version string.
func Find(version string) (Runtime, bool) {
	for _, rt := range runtimes {
		if rt.Version == version {
			return rt, true
		}
	}
	return Runtime{}, false
}

// Search returns the releases whose version fuzzy-matches term, in catalog
// order. An empty term matches everything.
func Search(term string) []Runtime {
	if term == "" {
		return All()
	}
	var out []Runtime
	for _, rt := range runtimes {
		if fuzzy.MatchNormalizedFold(term, rt.Version) {
			out = append(out, rt)
		}
	}
	return out
}
