// Package fetch orchestrates the end-to-end batch: walk the runtime
// catalog, download each installer (memoized on disk), and expand its DLLs
// into a per-version output directory via the strategy the version calls
// for. Runs are idempotent: a non-empty vcruntime_<version> directory is
// the marker that a version is done.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/vcfetch/internal/catalog"
	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/quantmind-br/vcfetch/internal/db"
	"github.com/quantmind-br/vcfetch/internal/extract"
	"github.com/quantmind-br/vcfetch/internal/fetcher"
	"github.com/quantmind-br/vcfetch/internal/fsops"
	"github.com/quantmind-br/vcfetch/internal/helpers"
	"github.com/quantmind-br/vcfetch/internal/paths"
	"github.com/quantmind-br/vcfetch/internal/tools"
	"github.com/quantmind-br/vcfetch/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options controls one batch run.
type Options struct {
	Destination string
	IncludeOld  bool // consider versions older than major version 14
	Force       bool // re-extract versions whose output directory already exists
	AssumeYes   bool // skip the --force confirmation prompt
}

// Runner executes batch runs.
type Runner struct {
	fs      afero.Fs
	cmd     helpers.CommandRunner
	log     *zerolog.Logger
	dl      *fetcher.Downloader
	ext     *extract.Extractor
	out     io.Writer
	confirm func(label string) (bool, error)

	// entries overrides the catalog; nil means catalog.Filter(opts.IncludeOld).
	entries []catalog.Runtime

	// newTools overrides tool manager construction; nil means tools.New.
	newTools func(paths.Layout) *tools.Manager
}

// New creates a Runner against the real filesystem and processes.
func New(cfg *config.Config, log *zerolog.Logger) *Runner {
	fs := afero.NewOsFs()
	cmd := helpers.NewOSCommandRunner()
	timeout := time.Duration(cfg.Fetch.HTTPTimeoutSeconds) * time.Second

	return &Runner{
		fs:      fs,
		cmd:     cmd,
		log:     log,
		dl:      fetcher.New(log, timeout, cfg.Fetch.Progress),
		ext:     extract.NewWithDeps(log, fs, cmd, cfg.Fetch.ExpandCommand),
		out:     os.Stdout,
		confirm: ui.ConfirmPrompt,
	}
}

// NewWithDeps creates a Runner with injected dependencies (for tests).
func NewWithDeps(log *zerolog.Logger, fs afero.Fs, cmd helpers.CommandRunner, dl *fetcher.Downloader, ext *extract.Extractor, out io.Writer) *Runner {
	return &Runner{
		fs:      fs,
		cmd:     cmd,
		log:     log,
		dl:      dl,
		ext:     ext,
		out:     out,
		confirm: func(string) (bool, error) { return true, nil },
	}
}

// Run processes the catalog. Prerequisite and download failures abort the
// whole run; per-version extraction failures are reported and the batch
// continues, turning into a single error at the end.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	layout := paths.NewLayout(opts.Destination)

	// The top-level layout is never created by the tool, only validated.
	if !fsops.IsDir(r.fs, layout.DownloadsDir()) {
		return fmt.Errorf("the download directory does not exist: %s", layout.DownloadsDir())
	}

	toolMgr := tools.New(r.fs, r.cmd, r.dl, layout, r.log)
	if r.newTools != nil {
		toolMgr = r.newTools(layout)
	}
	wixDir, err := toolMgr.Wix(ctx)
	if err != nil {
		return err
	}

	ledger, err := db.New(ctx, layout.HistoryDB())
	if err != nil {
		// The ledger is informational; a run must not depend on it.
		r.log.Warn().Err(err).Msg("fetch history ledger unavailable")
		ledger = nil
	} else {
		defer ledger.Close()
	}

	entries := r.entries
	if entries == nil {
		entries = catalog.Filter(opts.IncludeOld)
	}

	var failed int
	for _, rt := range entries {
		// Interruption point between entries; idempotent markers make a
		// partially-run batch resumable.
		if err := ctx.Err(); err != nil {
			return err
		}

		installer := layout.InstallerPath(rt)
		if err := r.dl.Fetch(ctx, rt.URL, installer); err != nil {
			return fmt.Errorf("fetch %s: %w", rt.Version, err)
		}
		r.recordDownload(ctx, ledger, rt, installer)

		extracted, err := r.extractRuntime(ctx, layout, toolMgr, wixDir, rt, installer, opts)
		if err != nil {
			failed++
			r.log.Error().Err(err).Str("version", rt.Version).Msg("extraction failed")
			fmt.Fprintf(r.out, "Failed to extract %s: %v\n", rt.Version, err)
			continue
		}
		if extracted {
			r.recordExtraction(ctx, ledger, rt, layout.OutputDir(rt.Version))
			fmt.Fprintf(r.out, "Extracted %s\n", rt.Version)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d runtimes failed to extract", failed, len(entries))
	}

	return nil
}

// extractRuntime dispatches one downloaded installer to its extraction
// strategy. It reports whether the version was (re)extracted.
func (r *Runner) extractRuntime(ctx context.Context, layout paths.Layout, toolMgr *tools.Manager, wixDir string, rt catalog.Runtime, installer string, opts Options) (bool, error) {
	outDir := layout.OutputDir(rt.Version)

	if fsops.IsDirNonEmpty(r.fs, outDir) {
		if !opts.Force {
			fmt.Fprintf(r.out, "Already have %s\n", rt.Version)
			return false, nil
		}
		if !opts.AssumeYes {
			ok, err := r.confirm(fmt.Sprintf("Re-extract %s over %s", rt.Version, outDir))
			if err != nil {
				return false, err
			}
			if !ok {
				fmt.Fprintf(r.out, "Keeping existing %s\n", rt.Version)
				return false, nil
			}
		}
		if err := fsops.RemoveContents(r.fs, outDir); err != nil {
			return false, fmt.Errorf("clear %s: %w", outDir, err)
		}
	}

	switch rt.Strategy() {
	case catalog.StrategyUnsupported:
		fmt.Fprintf(r.out, "Cannot extract %s runtime. Skipping.\n", rt.ProductName())
		return false, nil

	case catalog.StrategyLegacy:
		if err := r.extractLegacy(ctx, toolMgr, rt, installer, outDir); err != nil {
			return false, err
		}

	case catalog.StrategyBundle:
		if err := r.extractBundle(ctx, wixDir, rt, installer, outDir); err != nil {
			return false, err
		}
	}

	if !fsops.IsDirNonEmpty(r.fs, outDir) {
		return false, fmt.Errorf("extraction produced no files for %s", rt.Version)
	}

	return true, nil
}

func (r *Runner) extractLegacy(ctx context.Context, toolMgr *tools.Manager, rt catalog.Runtime, installer, outDir string) error {
	// The 7-Zip tools are only needed for pre-WiX installers, so they are
	// fetched lazily on the first legacy entry.
	sevenZip, err := toolMgr.SevenZip(ctx)
	if err != nil {
		return err
	}

	cabDir, cleanup, err := r.ext.LegacyCabs(ctx, sevenZip, installer)
	if err != nil {
		return err
	}
	defer cleanup()

	cabs, err := afero.ReadDir(r.fs, cabDir)
	if err != nil {
		return fmt.Errorf("list extracted cabinets: %w", err)
	}

	if err := fsops.EnsureDir(r.fs, outDir, 0755); err != nil {
		return err
	}

	for _, cab := range cabs {
		if err := r.ext.ExpandCab(ctx, filepath.Join(cabDir, cab.Name()), outDir); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) extractBundle(ctx context.Context, wixDir string, rt catalog.Runtime, installer, outDir string) error {
	cabs, cleanup, err := r.ext.BundleCabs(ctx, wixDir, installer)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := fsops.EnsureDir(r.fs, outDir, 0755); err != nil {
		return err
	}

	for _, cab := range cabs {
		if err := r.ext.ExpandCab(ctx, cab, outDir); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) recordDownload(ctx context.Context, ledger *db.DB, rt catalog.Runtime, installer string) {
	if ledger == nil {
		return
	}
	if err := ledger.RecordDownload(ctx, rt.Version, rt.URL, installer); err != nil {
		r.log.Warn().Err(err).Str("version", rt.Version).Msg("failed to record download")
	}
}

func (r *Runner) recordExtraction(ctx context.Context, ledger *db.DB, rt catalog.Runtime, outDir string) {
	if ledger == nil {
		return
	}
	if err := ledger.RecordExtraction(ctx, rt.Version, outDir); err != nil {
		r.log.Warn().Err(err).Str("version", rt.Version).Msg("failed to record extraction")
	}
}
