// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/secrets"
)

// secretsDir is read at startup for API keys and the contact email.
const secretsDir = ".secrets/"

// loadedSecrets holds credentials loaded from secretsDir at startup.
var loadedSecrets secrets.Store

// rootCmd is the get-papers-list command. It takes exactly one query.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "Fetch PubMed papers for a query with corresponding-author emails",
	Long: `get-papers-list searches PubMed with the given query, fetches each matching
record, extracts title, publication date, authors, and affiliations, and finds a
corresponding-author email. An email found in an affiliation is used as is;
otherwise the paper's DOI is looked up in Crossref.

Results are printed to the console, or written to a file with --file. The
file format is CSV (TSV for a .tsv path) unless --format selects json or yaml.

The query uses PubMed search syntax, for example:

  get-papers-list "COVID-19 Vaccine"
  get-papers-list "cancer immunotherapy[Title] AND 2023[PDAT]" -f papers.csv`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secretsDir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 && viper.GetBool("debug") {
			keys := s.Keys()
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runQuery,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "write results to this file instead of the console")
	f.BoolP("debug", "d", false, "print debug information to stderr")
	f.String("format", string(defaultFormat), "file format: csv, json, or yaml (a .tsv path writes tab-separated values)")
	f.IntP("max-results", "n", defaultMaxResults, "maximum number of PubMed records to fetch")

	viper.BindPFlag("output.path", f.Lookup("file"))
	viper.BindPFlag("output.format", f.Lookup("format"))
	viper.BindPFlag("debug", f.Lookup("debug"))
	viper.BindPFlag("pubmed.max_results", f.Lookup("max-results"))
}

func initConfig() {
	// .env values become environment variables before viper reads them.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
