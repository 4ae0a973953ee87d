package amr

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
)

// ErrNoResults is returned when a comparison produced zero results
var ErrNoResults = errors.New("no comparison results generated")

// reportColumns are the columns of the CSV report and the printed table, in order
var reportColumns = []string{"Sample_ID", "Closest_AMR_Gene", "Similarity(%)"}

// renderTable writes the comparison results to w as an aligned table.
func renderTable(results []Result, w io.Writer) {
	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "%s\t%s\t%s\n", reportColumns[0], reportColumns[1], reportColumns[2])
	for _, r := range results {
		fmt.Fprintf(writer, "%s\t%s\t%.2f\n", r.SampleID, r.Gene, r.Similarity)
	}
	writer.Flush()
}

// writeCSV saves the comparison results to a CSV file at path, creating
// parent directories as needed, and returns the absolute path written to.
func writeCSV(results []Result, path string) (string, error) {
	if len(results) == 0 {
		return "", ErrNoResults
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create a report directory at %s: %v", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create the report file %s: %v", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(reportColumns); err != nil {
		return "", fmt.Errorf("failed to write the report header: %v", err)
	}
	for _, r := range results {
		row := []string{r.SampleID, r.Gene, strconv.FormatFloat(r.Similarity, 'f', 2, 64)}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write a report row for %s: %v", r.SampleID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write the report to %s: %v", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to create an absolute path to %s: %v", path, err)
	}

	return abs, nil
}
