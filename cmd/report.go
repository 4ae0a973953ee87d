package cmd

import (
	"github.com/mehdikhedi/AMR-gene-detection/internal/amr"
	"github.com/spf13/cobra"
)

// reportCmd is for saving the comparison results to a CSV report
var reportCmd = &cobra.Command{
	Use:                        "report",
	Short:                      "Compare sample sequences and save a CSV report",
	Run:                        amr.ReportCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Find the closest matching AMR gene for every sample sequence, save the
results to a CSV report and print them as a table.

The report has one row per sample with the sample's ID, the name of the
closest reference gene and the similarity percentage.`,
	Aliases: []string{"save"},
	Example: "  amrscan report -f data/sample_sequences.fasta -o results/amr_report.csv",
}

// set flags
func init() {
	reportCmd.Flags().StringP("fasta", "f", "", "input FASTA file with sample sequences")
	reportCmd.Flags().StringP("reference", "r", "", "CSV catalog of reference AMR genes")
	reportCmd.Flags().StringP("output", "o", "", "path to write the CSV report to")

	rootCmd.AddCommand(reportCmd)
}
