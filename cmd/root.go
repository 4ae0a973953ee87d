// Package cmd is for command line interactions with the amrscan application
package cmd

import (
	"log"
	"os"

	"github.com/mehdikhedi/AMR-gene-detection/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "amrscan",
	Short: `Screen DNA samples for antimicrobial resistance genes.
Each sample is matched against a reference catalog by positional identity`,
	Version: "0.1.0",

	// keep cobra's generated completion command usable but out of help and the docs pages
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(readSettings)

	// settings is an optional parameter for a settings file (that overrides the default paths)
	rootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "settings file with fasta, reference and output paths")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress during the comparison")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// readSettings loads the settings file into viper. The conventional file may
// be absent, a file named via --settings may not.
func readSettings() {
	settings := viper.GetString("settings")

	if _, err := os.Stat(settings); os.IsNotExist(err) {
		if settings != config.RootSettingsFile {
			log.Fatalf("failed to find a settings file at %s", settings)
		}
		return
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read the settings file %s: %v", settings, err)
	}
}
