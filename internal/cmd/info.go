package cmd

import (
	"context"
	"fmt"

	"github.com/quantmind-br/vcfetch/internal/catalog"
	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/quantmind-br/vcfetch/internal/db"
	"github.com/quantmind-br/vcfetch/internal/fsops"
	"github.com/quantmind-br/vcfetch/internal/paths"
	"github.com/quantmind-br/vcfetch/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command
func NewInfoCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "info [version]",
		Short: "Show release information",
		Long:  `Show detailed information about one catalog release, including its on-disk and fetch-history state.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := args[0]
			if destination == "" {
				destination = cfg.Paths.Destination
			}

			rt, ok := catalog.Find(version)
			if !ok {
				// Fall back to a fuzzy match so "14.42" finds the release
				matches := catalog.Search(version)
				if len(matches) != 1 {
					ui.PrintError("release not found: %s", version)
					ui.PrintInfo("Use 'vcfetch list' to see the catalog")
					return fmt.Errorf("release not found")
				}
				rt = matches[0]
			}

			printReleaseInfo(rt, paths.NewLayout(destination))

			printHistory(cmd.Context(), rt, paths.NewLayout(destination), log)

			log.Info().Str("version", rt.Version).Msg("displayed release info")
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "destination directory to check status against")

	return cmd
}

// printReleaseInfo displays the catalog entry and its on-disk state
func printReleaseInfo(rt catalog.Runtime, layout paths.Layout) {
	fs := afero.NewOsFs()

	ui.PrintHeader(fmt.Sprintf("Release Information: %s", rt.Version))
	fmt.Println()

	ui.PrintKeyValue("Version", rt.Version)
	ui.PrintKeyValue("Product", rt.ProductName())
	ui.PrintKeyValue("Strategy", ui.ColorizeStrategy(rt.Strategy().String()))
	ui.PrintKeyValue("URL", rt.URL)

	fmt.Println()
	ui.PrintSubheader("On Disk")

	installer := layout.InstallerPath(rt)
	if fsops.Exists(fs, installer) {
		ui.PrintKeyValue("Installer", installer)
	} else {
		ui.PrintKeyValue("Installer", "(not downloaded)")
	}

	outDir := layout.OutputDir(rt.Version)
	if fsops.IsDirNonEmpty(fs, outDir) {
		ui.PrintKeyValue("Runtime DLLs", outDir)
	} else {
		ui.PrintKeyValue("Runtime DLLs", "(not extracted)")
	}
}

// printHistory displays the ledger record, if any
func printHistory(ctx context.Context, rt catalog.Runtime, layout paths.Layout, log *zerolog.Logger) {
	ledger, err := db.New(ctx, layout.HistoryDB())
	if err != nil {
		log.Debug().Err(err).Msg("fetch history ledger unavailable")
		return
	}
	defer func() { _ = ledger.Close() }()

	rec, err := ledger.Get(ctx, rt.Version)
	if err != nil {
		return
	}

	fmt.Println()
	ui.PrintSubheader("Fetch History")
	ui.PrintKeyValue("Downloaded", rec.DownloadedAt.Format("2006-01-02 15:04:05"))
	if rec.ExtractedAt.Valid {
		ui.PrintKeyValue("Extracted", rec.ExtractedAt.Time.Format("2006-01-02 15:04:05"))
	} else {
		ui.PrintKeyValue("Extracted", "(never)")
	}
	fmt.Println()
}
