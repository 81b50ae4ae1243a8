// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// APIConfig holds settings for the INSPIRE-HEP API client.
type APIConfig struct {
	// BaseURL is the INSPIRE API root (default "https://inspirehep.net/api").
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url" mapstructure:"base_url"`

	// TimeoutSeconds is the per-request HTTP timeout in seconds
	// (default 30).
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds" mapstructure:"timeout_seconds"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent" toml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" toml:"max_retries" mapstructure:"max_retries"`

	// RateLimit is the maximum request rate in requests per second
	// (default 2). Fetches are sequential; the limiter spaces them out.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" toml:"rate_limit" mapstructure:"rate_limit"`
}

// RequestTimeout converts TimeoutSeconds to a duration, applying the
// default when unset.
func (c APIConfig) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OutputConfig holds defaults for rendering references and networks.
type OutputConfig struct {
	// Format selects the output format: "json", "yaml", or "bibtex".
	Format string `json:"format" yaml:"format" toml:"format" mapstructure:"format"`

	// Path is the output file; empty writes to stdout.
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty" mapstructure:"path"`
}

// NetworkConfig holds defaults for citation network construction.
type NetworkConfig struct {
	// DefaultDepth is the reference-following depth used when the
	// --depth flag is not given (default 1).
	DefaultDepth int `json:"default_depth" yaml:"default_depth" toml:"default_depth" mapstructure:"default_depth"`
}

// Config is the full refnet configuration, loaded from refnet.toml.
type Config struct {
	API     APIConfig     `json:"api" yaml:"api" toml:"api" mapstructure:"api"`
	Output  OutputConfig  `json:"output" yaml:"output" toml:"output" mapstructure:"output"`
	Network NetworkConfig `json:"network" yaml:"network" toml:"network" mapstructure:"network"`

	// Categories restricts reference listings to these INSPIRE
	// categories; empty keeps everything.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty" mapstructure:"categories"`

	// Verbose enables progress chatter on stderr.
	Verbose bool `json:"verbose" yaml:"verbose" toml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "https://inspirehep.net/api",
			TimeoutSeconds: 30,
			UserAgent:      "refnet/0.1",
			MaxRetries:     3,
			RateLimit:      2,
		},
		Output:  OutputConfig{Format: "json"},
		Network: NetworkConfig{DefaultDepth: 1},
	}
}
