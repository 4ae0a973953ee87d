package amr

import (
	"errors"
	"os"
	"path"
	"reflect"
	"testing"
)

func Test_readSamples(t *testing.T) {
	samples, err := readSamples(path.Join("..", "..", "test", "input", "samples.fasta"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Sample{
		{"s1", "ACGT"},
		{"s2", "ACGGT"},
		{"s3", "ACGTN"},
	}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("readSamples() = %v, want %v", samples, want)
	}
}

func Test_readSamples_missing(t *testing.T) {
	_, err := readSamples(path.Join("..", "..", "test", "input", "nonexistent.fasta"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readSamples() error = %v, want a wrapped os.ErrNotExist", err)
	}
}

func Test_readSamples_empty(t *testing.T) {
	_, err := readSamples(path.Join("..", "..", "test", "input", "empty.fasta"))
	if !errors.Is(err, ErrNoSequences) {
		t.Errorf("readSamples() error = %v, want a wrapped ErrNoSequences", err)
	}
}

func Test_readSamples_crlf(t *testing.T) {
	samples, err := readSamples(path.Join("..", "..", "test", "input", "crlf.fasta"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Sample{
		{"s1", "ACGGT"},
	}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("readSamples() = %v, want %v", samples, want)
	}
}

func Test_headerID(t *testing.T) {
	type args struct {
		line string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"id only",
			args{">s1"},
			"s1",
		},
		{
			"id with a description",
			args{">s1 Klebsiella pneumoniae isolate"},
			"s1",
		},
		{
			"empty header",
			args{">"},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headerID(tt.args.line); got != tt.want {
				t.Errorf("headerID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_readReference(t *testing.T) {
	genes, err := readReference(path.Join("..", "..", "test", "input", "reference.csv"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Gene{
		{"blaTEM-1", "ACGT"},
		{"mecA", "tgCa"}, // catalog case survives the load
		{"vanA", "ACGGT"},
	}
	if !reflect.DeepEqual(genes, want) {
		t.Errorf("readReference() = %v, want %v", genes, want)
	}
}

func Test_readReference_missing(t *testing.T) {
	_, err := readReference(path.Join("..", "..", "test", "input", "nonexistent.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readReference() error = %v, want a wrapped os.ErrNotExist", err)
	}
}

func Test_readReference_badSchema(t *testing.T) {
	_, err := readReference(path.Join("..", "..", "test", "input", "bad_schema.csv"))
	if !errors.Is(err, ErrSchema) {
		t.Errorf("readReference() error = %v, want a wrapped ErrSchema", err)
	}
}

func Test_readReference_headerCleanup(t *testing.T) {
	genes, err := readReference(path.Join("..", "..", "test", "input", "bom.csv"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Gene{
		{"geneA", "ACGT"},
	}
	if !reflect.DeepEqual(genes, want) {
		t.Errorf("readReference() = %v, want %v", genes, want)
	}
}

func Test_readReference_crlf(t *testing.T) {
	genes, err := readReference(path.Join("..", "..", "test", "input", "crlf.csv"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Gene{
		{"geneA", "ACGT"},
		{"geneB", "TGCA"},
	}
	if !reflect.DeepEqual(genes, want) {
		t.Errorf("readReference() = %v, want %v", genes, want)
	}
}

func Test_cleanCell(t *testing.T) {
	type args struct {
		cell string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"plain",
			args{"gene_name"},
			"gene_name",
		},
		{
			"padded",
			args{"  sequence\t"},
			"sequence",
		},
		{
			"byte order mark",
			args{"\ufeffgene_name"},
			"gene_name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanCell(tt.args.cell); got != tt.want {
				t.Errorf("cleanCell() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_NewFlags(t *testing.T) {
	fs, c := NewFlags("samples.fasta", "", "out.csv")

	if fs.fasta != "samples.fasta" {
		t.Errorf("NewFlags() fasta = %s, want samples.fasta", fs.fasta)
	}
	if fs.reference != c.ReferenceCSV {
		t.Errorf("NewFlags() reference = %s, want the config default %s", fs.reference, c.ReferenceCSV)
	}
	if fs.output != "out.csv" {
		t.Errorf("NewFlags() output = %s, want out.csv", fs.output)
	}
}
