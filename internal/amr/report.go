package amr

import (
	"fmt"
	"os"

	"github.com/mehdikhedi/AMR-gene-detection/config"
	"github.com/spf13/cobra"
)

// ReportCmd takes a cobra command (with its flags) and runs Report.
func ReportCmd(cmd *cobra.Command, args []string) {
	Report(parseCmdFlags(cmd, args))
}

// Report screens the sample sequences against the reference gene catalog,
// saves the results to a CSV report and prints them to stdout.
func Report(flags *Flags, conf *config.Config) []Result {
	results, err := screen(flags, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	saved, err := writeCSV(results, flags.output)
	if err != nil {
		stderr.Fatalln(err)
	}

	fmt.Printf("Report saved to %s\n", saved)
	renderTable(results, os.Stdout)

	return results
}
