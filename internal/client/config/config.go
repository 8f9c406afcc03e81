package config

import "time"

// Config holds runtime settings for the BlogTalks CLI.
//
// Fields:
//   - APIBaseURL: base URL of the BlogTalks HTTP API.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - PageSize: number of posts requested per page.
//   - DatabasePath: path of the local SQLite file holding session data.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "blogtalks.db"
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 9
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
