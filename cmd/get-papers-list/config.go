// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/output"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxResults  = 20
	defaultCrossrefRPS = 5
	defaultFormat      = types.FormatCSV
)

// setDefaults registers every configuration key so that environment
// variables and config files can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", defaultTimeout)
	v.SetDefault("http.user_agent", userAgent())
	v.SetDefault("http.max_retries", 0)

	v.SetDefault("pubmed.base_url", "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/")
	v.SetDefault("pubmed.api_key", "")
	v.SetDefault("pubmed.email", "")
	v.SetDefault("pubmed.tool", "get-papers-list")
	v.SetDefault("pubmed.max_results", defaultMaxResults)
	v.SetDefault("pubmed.requests_per_second", 0)

	v.SetDefault("crossref.base_url", "https://api.crossref.org/works/")
	v.SetDefault("crossref.mailto", "")
	v.SetDefault("crossref.enabled", true)
	v.SetDefault("crossref.requests_per_second", defaultCrossrefRPS)

	v.SetDefault("output.path", "")
	v.SetDefault("output.format", string(defaultFormat))
	v.SetDefault("debug", false)
}

// loadConfig builds the run configuration from v. Secrets fill the NCBI API
// key and the contact email when no flag, environment variable, or config
// file sets them.
func loadConfig(v *viper.Viper, s secrets.Store) (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.PubMed.APIKey = secretDefault(s, secrets.NCBIAPIKey, cfg.PubMed.APIKey)
	cfg.PubMed.Email = secretDefault(s, secrets.ContactEmail, cfg.PubMed.Email)
	if cfg.Crossref.Mailto == "" {
		cfg.Crossref.Mailto = cfg.PubMed.Email
	}

	format, err := output.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return cfg, err
	}
	cfg.Output.Format = format

	if cfg.PubMed.MaxResults <= 0 {
		return cfg, fmt.Errorf("max results must be positive, got %d", cfg.PubMed.MaxResults)
	}
	if cfg.HTTP.MaxRetries < 0 {
		return cfg, fmt.Errorf("http.max_retries must not be negative, got %d", cfg.HTTP.MaxRetries)
	}
	return cfg, nil
}

// secretDefault returns fallback when it is set, or the secret for key.
func secretDefault(s secrets.Store, key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s.Get(key)
}
