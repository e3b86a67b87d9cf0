package cmd

import (
	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vcfetch",
		Short:        "Visual C++ Redistributable fetcher",
		Long:         `Downloads the x64 Visual C++ Redistributable installers and extracts their runtime DLLs into per-version directories.`,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewFetchCmd(cfg, log))
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewInfoCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
