package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/vcfetch/internal/catalog"
	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/quantmind-br/vcfetch/internal/fsops"
	"github.com/quantmind-br/vcfetch/internal/paths"
	"github.com/quantmind-br/vcfetch/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// listEntry is one row of list output.
type listEntry struct {
	Version   string `json:"version"`
	Product   string `json:"product"`
	Strategy  string `json:"strategy"`
	Extracted bool   `json:"extracted"`
	URL       string `json:"url"`
}

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput  bool
		destination string
		includeOld  bool
	)

	cmd := &cobra.Command{
		Use:   "list [term]",
		Short: "List the runtime catalog",
		Long:  `List the known Visual C++ Redistributable releases with their extraction strategy and on-disk status. An optional term fuzzy-filters by version.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if destination == "" {
				destination = cfg.Paths.Destination
			}

			term := ""
			if len(args) == 1 {
				term = args[0]
			}

			entries := buildListEntries(term, includeOld, destination)

			// JSON output
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				ui.PrintWarning("No catalog entries match %q", term)
				return nil
			}

			printCatalogSummary(entries, term)
			printCatalogTable(cmd, entries)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "destination directory to check status against")
	cmd.Flags().BoolVar(&includeOld, "include-old-versions", true, "include releases older than Visual C++ 2015")

	return cmd
}

// buildListEntries resolves the filtered catalog against the on-disk state.
func buildListEntries(term string, includeOld bool, destination string) []listEntry {
	fs := afero.NewOsFs()
	layout := paths.NewLayout(destination)

	matched := catalog.Search(term)
	entries := make([]listEntry, 0, len(matched))
	for _, rt := range matched {
		if !includeOld && rt.Major() < 14 {
			continue
		}
		entries = append(entries, listEntry{
			Version:   rt.Version,
			Product:   rt.ProductName(),
			Strategy:  rt.Strategy().String(),
			Extracted: fsops.IsDirNonEmpty(fs, layout.OutputDir(rt.Version)),
			URL:       rt.URL,
		})
	}

	return entries
}

// printCatalogSummary prints totals before the table
func printCatalogSummary(entries []listEntry, term string) {
	ui.PrintHeader("Runtime Catalog")

	extracted := 0
	for _, e := range entries {
		if e.Extracted {
			extracted++
		}
	}

	fmt.Printf("Total: %d releases (%d extracted)\n", len(entries), extracted)
	if term != "" {
		ui.PrintInfo("Filter: %s", term)
	}
	fmt.Println()
}

// printCatalogTable prints the catalog table view
func printCatalogTable(cmd *cobra.Command, entries []listEntry) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Version", "Product", "Strategy", "Status"}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, e := range entries {
		status := "-"
		if e.Extracted {
			status = "extracted"
		}

		table.Append(
			e.Version,
			e.Product,
			ui.ColorizeStrategy(e.Strategy),
			status,
		)
	}

	table.Render()
}
