package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over the file.
//
// Recognized variables:
//
//	BLOGTALKS_API_URL    base URL of the BlogTalks API
//	BLOGTALKS_DB         path of the local session database
//	BLOGTALKS_TIMEOUT    request timeout, e.g. "10s"
//	BLOGTALKS_PAGE_SIZE  posts per page
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BLOGTALKS_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BLOGTALKS_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("BLOGTALKS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("BLOGTALKS_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}
