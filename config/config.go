// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// RootSettingsFile is the name of the optional settings file read from the
// working directory. Command line flags override the fields in it.
const RootSettingsFile = "settings.yaml"

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// path to the FASTA file with sample sequences
	SampleFasta string `mapstructure:"fasta"`

	// path to the CSV catalog of reference AMR genes
	ReferenceCSV string `mapstructure:"reference"`

	// path the CSV report is written to
	ReportCSV string `mapstructure:"output"`

	// whether to log comparison progress to the console
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by
// Viper settings (either from the local settings.yaml)
// and/or command line arguments
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// setDefaults registers the fallback paths used when neither the settings
// file nor the command line set one. Safe to call more than once.
func setDefaults() {
	viper.SetDefault("fasta", filepath.Join("data", "sample_sequences.fasta"))
	viper.SetDefault("reference", filepath.Join("data", "resistance_genes_reference.csv"))
	viper.SetDefault("output", filepath.Join("data", "amr_matches_report.csv"))
}
