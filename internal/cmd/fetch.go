package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/quantmind-br/vcfetch/internal/fetch"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command
func NewFetchCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		destination string
		includeOld  bool
		force       bool
		assumeYes   bool
		timeoutSecs int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract the runtime catalog",
		Long:  `Download every Visual C++ Redistributable in the catalog and extract its runtime DLLs into vcruntime_<version> directories under the destination.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if destination == "" {
				destination = cfg.Paths.Destination
			}

			log.Info().
				Str("destination", destination).
				Bool("include_old", includeOld).
				Bool("force", force).
				Msg("starting fetch run")

			// Create context with timeout covering the whole batch
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeoutSecs)*time.Second)
			defer cancel()

			opts := fetch.Options{
				Destination: destination,
				IncludeOld:  includeOld,
				Force:       force,
				AssumeYes:   assumeYes,
			}

			color.Cyan("→ Fetching runtimes into %s...", destination)

			runner := fetch.New(cfg, log)
			if err := runner.Run(ctx, opts); err != nil {
				color.Red("Error: %v", err)
				return fmt.Errorf("fetch run failed: %w", err)
			}

			color.Green("✓ All runtimes up to date")

			log.Info().Str("destination", destination).Msg("fetch run completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "destination directory (default from config)")
	cmd.Flags().BoolVar(&includeOld, "include-old-versions", cfg.Fetch.IncludeOldVersions, "also fetch releases older than Visual C++ 2015")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "re-extract versions that already have output directories")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not prompt before re-extracting with --force")
	cmd.Flags().IntVar(&timeoutSecs, "timeout", 3600, "whole-run timeout in seconds")

	return cmd
}
