// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by both remote APIs.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of 429 retries. Zero means a single attempt.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// PubMedConfig holds settings for the NCBI E-utilities ESearch and EFetch calls.
type PubMedConfig struct {
	// BaseURL is the E-utilities root, e.g. "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Email and Tool identify the caller to NCBI.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
	Tool  string `json:"tool" yaml:"tool" mapstructure:"tool"`

	// MaxResults is the ESearch retmax (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// RequestsPerSecond overrides the NCBI default pacing when positive.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// Rate returns the request pacing for E-utilities: the configured value,
// or the NCBI default of 10/s with an API key and 3/s without.
func (c PubMedConfig) Rate() float64 {
	if c.RequestsPerSecond > 0 {
		return c.RequestsPerSecond
	}
	if c.APIKey != "" {
		return 10
	}
	return 3
}

// CrossrefConfig holds settings for the Crossref works lookup.
type CrossrefConfig struct {
	// BaseURL is the works endpoint, e.g. "https://api.crossref.org/works/".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Mailto is sent as the mailto parameter for polite pool access.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty" mapstructure:"mailto"`

	// Enabled turns the email lookup on or off.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// RequestsPerSecond paces Crossref calls (default 5).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// OutputFormat selects the file output format.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputConfig holds settings for the output sink.
type OutputConfig struct {
	// Path is the destination file. Empty means console output.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Format selects csv, json, or yaml for file output.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// PipelineConfig groups all settings for one run.
type PipelineConfig struct {
	HTTP     HTTPConfig     `json:"http" yaml:"http" mapstructure:"http"`
	PubMed   PubMedConfig   `json:"pubmed" yaml:"pubmed" mapstructure:"pubmed"`
	Crossref CrossrefConfig `json:"crossref" yaml:"crossref" mapstructure:"crossref"`
	Output   OutputConfig   `json:"output" yaml:"output" mapstructure:"output"`
	Debug    bool           `json:"debug" yaml:"debug" mapstructure:"debug"`
}
