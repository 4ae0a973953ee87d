package amr

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mehdikhedi/AMR-gene-detection/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

var (
	// ErrSchema is returned when the reference catalog lacks a required column
	ErrSchema = errors.New("missing required reference columns")

	// ErrNoSequences is returned when a FASTA file holds no sequence records
	ErrNoSequences = errors.New("no sequences found")
)

// Flags contains parsed cobra Flags like "fasta", "reference" and "output"
// that are used by the compare and report commands.
type Flags struct {
	// the path of the FASTA file with sample sequences
	fasta string

	// the path of the CSV catalog with reference genes
	reference string

	// the path the CSV report is written to
	output string
}

// Sample is a single sample record parsed from a FASTA file.
type Sample struct {
	// ID is the first whitespace-delimited token of the record's header
	ID string

	// Seq is the record's sequence, uppercased at load
	Seq string
}

// Gene is a single reference gene from the AMR catalog.
type Gene struct {
	// Name of the gene, eg "blaTEM-1"
	Name string

	// Seq is the gene's sequence exactly as written in the catalog
	Seq string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(fasta, reference, output string) (*Flags, *config.Config) {
	c := config.New()

	return &Flags{
		fasta:     orDefault(fasta, c.SampleFasta),
		reference: orDefault(reference, c.ReferenceCSV),
		output:    orDefault(output, c.ReportCSV),
	}, c
}

// parseCmdFlags gathers the fasta, reference and output paths from a cobra
// cmd object. returns Flags and a Config struct for amr.Compare or amr.Report.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	c := config.New()

	if fs.fasta, err = cmd.Flags().GetString("fasta"); fs.fasta == "" || err != nil {
		fs.fasta = c.SampleFasta
	}

	if fs.reference, err = cmd.Flags().GetString("reference"); fs.reference == "" || err != nil {
		fs.reference = c.ReferenceCSV
	}

	// the compare command has no output flag, the config default stands in
	if fs.output, err = cmd.Flags().GetString("output"); fs.output == "" || err != nil {
		fs.output = c.ReportCSV
	}

	return fs, c
}

// orDefault returns value unless it is empty, fallback otherwise.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// readSamples parses the sample records out of the FASTA file at path.
// Records keep their file order. Sequence characters are uppercased but
// otherwise left as written, non-ACGT characters included.
func readSamples(path string) ([]Sample, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to find a sample FASTA at %s: %w", path, os.ErrNotExist)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the sample FASTA %s: %v", path, err)
	}

	// split by newlines
	lines := strings.Split(string(dat), "\n")

	// find the headers
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, headerID(line))
		}
	}

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}

		var seq strings.Builder
		for _, seqLine := range lines[headerIndex+1 : nextLine] {
			seq.WriteString(strings.TrimSpace(seqLine))
		}
		seqs = append(seqs, strings.ToUpper(seq.String()))
	}

	// build and return the new samples
	samples := make([]Sample, 0, len(ids))
	for i, id := range ids {
		samples = append(samples, Sample{
			ID:  id,
			Seq: seqs[i],
		})
	}

	// opened and parsed the file but found nothing
	if len(samples) < 1 {
		return nil, fmt.Errorf("%w in FASTA file %s", ErrNoSequences, path)
	}

	return samples, nil
}

// headerID returns the sample ID from a FASTA header: the first
// whitespace-delimited token after the ">".
func headerID(line string) string {
	fields := strings.Fields(strings.TrimPrefix(line, ">"))
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// readReference loads the AMR gene catalog from the CSV at path. Row order
// is kept and sequences are left exactly as written, case folding happens
// at comparison time. Columns are found by name so extra columns and any
// column order are fine.
func readReference(path string) ([]Gene, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to find a reference catalog at %s: %w", path, os.ErrNotExist)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the reference catalog %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read the reference catalog %s: %v", path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: the catalog %s has no header row", ErrSchema, path)
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}

	nameCol := findColumn(header, "gene_name")
	seqCol := findColumn(header, "sequence")
	if nameCol < 0 || seqCol < 0 {
		return nil, fmt.Errorf("%w: the catalog %s needs gene_name and sequence columns, found %v", ErrSchema, path, header)
	}

	genes := make([]Gene, 0, len(rows)-1)
	for _, row := range rows[1:] {
		genes = append(genes, Gene{
			Name: row[nameCol],
			Seq:  row[seqCol],
		})
	}

	return genes, nil
}

// cleanCell trims the whitespace and any byte order mark off a header cell.
func cleanCell(cell string) string {
	return strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff"))
}

// findColumn returns the index of the named column in the header, -1 when absent.
func findColumn(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}

	return -1
}
