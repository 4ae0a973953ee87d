package amr

import (
	"os"

	"github.com/mehdikhedi/AMR-gene-detection/config"
	"github.com/spf13/cobra"
)

// CompareCmd takes a cobra command (with its flags) and runs Compare.
func CompareCmd(cmd *cobra.Command, args []string) {
	Compare(parseCmdFlags(cmd, args))
}

// Compare screens the sample sequences against the reference gene catalog
// and prints the closest match per sample to stdout.
func Compare(flags *Flags, conf *config.Config) []Result {
	results, err := screen(flags, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	renderTable(results, os.Stdout)

	return results
}

// screen reads the reference catalog and the sample FASTA named in flags
// and compares every sample against the catalog.
func screen(flags *Flags, conf *config.Config) ([]Result, error) {
	catalog, err := readReference(flags.reference)
	if err != nil {
		return nil, err
	}

	samples, err := readSamples(flags.fasta)
	if err != nil {
		return nil, err
	}

	results, err := compareAll(samples, catalog, conf.Verbose)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}

	return results, nil
}
