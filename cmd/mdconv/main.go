// Package main is the entry point for the mdconv CLI, a batch
// document-to-Markdown converter.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdconv CLI.
var rootCmd = &cobra.Command{
	Use:   "mdconv",
	Short: "Convert documents to Markdown",
	Long: `mdconv converts documents of heterogeneous formats (HTML, plain text,
JSON, CSV, XML, Word documents, images) into normalized Markdown files.

Each input file produces one .md output; conversions that fail produce an
ERROR_<name>.md file carrying the error message, so a batch never aborts
partway through.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdconv.yaml or ~/.config/mdconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdconv"))
		}
	}

	viper.SetEnvPrefix("MDCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
