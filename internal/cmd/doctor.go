package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/quantmind-br/vcfetch/internal/db"
	"github.com/quantmind-br/vcfetch/internal/paths"
	"github.com/quantmind-br/vcfetch/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites and destination layout",
		Long:  `Check the external commands, destination directory layout, cached extraction tools, and fetch-history ledger a run depends on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if destination == "" {
				destination = cfg.Paths.Destination
			}
			layout := paths.NewLayout(destination)

			ui.PrintHeader("System Diagnostics")
			fmt.Println()

			var issues []string
			var warnings []string

			// 1. Required external command
			ui.PrintSubheader("Required Commands")
			if commandOnPath(cfg.Fetch.ExpandCommand) {
				ui.PrintSuccess("%s: found", cfg.Fetch.ExpandCommand)
			} else {
				ui.PrintError("%s: NOT FOUND", cfg.Fetch.ExpandCommand)
				issues = append(issues, fmt.Sprintf("Missing required command: %s (expands CAB files)", cfg.Fetch.ExpandCommand))
			}

			fmt.Println()

			// 2. Destination layout
			ui.PrintSubheader("Destination Layout")
			if checkWritableDir(destination) {
				ui.PrintSuccess("Destination: %s", destination)
			} else {
				ui.PrintError("Destination: NOT ACCESSIBLE (%s)", destination)
				issues = append(issues, fmt.Sprintf("Destination not accessible: %s", destination))
			}

			if checkWritableDir(layout.DownloadsDir()) {
				ui.PrintSuccess("Downloads directory: %s", layout.DownloadsDir())
			} else {
				ui.PrintError("Downloads directory: NOT FOUND (%s)", layout.DownloadsDir())
				issues = append(issues, fmt.Sprintf("Downloads directory missing: %s (create it before running fetch)", layout.DownloadsDir()))
			}

			fmt.Println()

			// 3. Cached extraction tools; fetched on demand, so absence is
			// only a warning.
			ui.PrintSubheader("Cached Tools")
			tools := []struct {
				path    string
				name    string
				purpose string
			}{
				{layout.SevenZipExe(), "7-Zip console extractor", "extract legacy installers"},
				{layout.DarkExe(), "WiX dark", "unpack Burn bundles"},
			}

			for _, tool := range tools {
				if _, err := os.Stat(tool.path); err == nil {
					ui.PrintSuccess("%s: cached", tool.name)
				} else {
					ui.PrintWarning("%s: not cached (downloaded on first use - %s)", tool.name, tool.purpose)
					warnings = append(warnings, fmt.Sprintf("Tool not cached yet: %s", tool.name))
				}
			}

			fmt.Println()

			// 4. Fetch history ledger
			ui.PrintSubheader("Fetch History")
			ctx := context.Background()
			if checkLedger(ctx, layout, log) {
				ui.PrintSuccess("Ledger: accessible (%s)", layout.HistoryDB())
			} else {
				ui.PrintWarning("Ledger: not accessible (runs still work without it)")
				warnings = append(warnings, "Fetch history ledger not accessible")
			}

			fmt.Println()

			// Summary
			ui.PrintHeader("Summary")
			fmt.Println()

			if len(issues) == 0 {
				ui.PrintSuccess("All critical checks passed!")
			} else {
				ui.PrintError("Found %d issue(s):", len(issues))
				ui.PrintList(issues)
				fmt.Println()
			}

			if len(warnings) > 0 {
				ui.PrintWarning("Found %d warning(s):", len(warnings))
				ui.PrintList(warnings)
			}

			fmt.Println()

			if len(issues) > 0 {
				return fmt.Errorf("system check failed with %d issue(s)", len(issues))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "destination directory to check")

	return cmd
}

// commandOnPath checks if a command resolves via PATH
func commandOnPath(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// checkWritableDir checks if a directory exists and is writable
func checkWritableDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	testFile := filepath.Join(path, ".vcfetch-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return false
	}
	os.Remove(testFile)

	return true
}

// checkLedger checks if the fetch history ledger can be opened
func checkLedger(ctx context.Context, layout paths.Layout, log *zerolog.Logger) bool {
	if _, err := os.Stat(layout.DownloadsDir()); err != nil {
		return false
	}

	ledger, err := db.New(ctx, layout.HistoryDB())
	if err != nil {
		log.Debug().Err(err).Msg("ledger open failed")
		return false
	}
	defer ledger.Close()

	_, err = ledger.List(ctx)
	return err == nil
}
