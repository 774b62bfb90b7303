// Package config handles configuration for the CLI client: defaults, an
// optional JSON file overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Lost&Found CLI.
//
// ServerBaseURL is the backend origin, e.g. "http://192.168.1.20:8080".
// The original clients hard-coded several diverging IP:port constants for
// what is one backend; here the URL is deployment configuration.
// RequestTimeout bounds every HTTP call; a timeout is reported as a
// network error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
