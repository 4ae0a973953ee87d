package cmd

import (
	"github.com/mehdikhedi/AMR-gene-detection/internal/amr"
	"github.com/spf13/cobra"
)

// compareCmd is for screening the sample sequences against the reference catalog
var compareCmd = &cobra.Command{
	Use:                        "compare",
	Short:                      "Compare sample sequences against the reference AMR genes",
	Run:                        amr.CompareCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Find the closest matching AMR gene for every sample sequence and print a
table with one row per sample.

Similarity is the percentage of positions holding the same base. Sequences
are walked together from their first base and the denominator is the longer
of the two lengths, so this is a screening score rather than an alignment.`,
	Aliases: []string{"match", "screen"},
	Example: "  amrscan compare -f data/sample_sequences.fasta -r data/resistance_genes_reference.csv",
}

// set flags
func init() {
	compareCmd.Flags().StringP("fasta", "f", "", "input FASTA file with sample sequences")
	compareCmd.Flags().StringP("reference", "r", "", "CSV catalog of reference AMR genes")

	rootCmd.AddCommand(compareCmd)
}
