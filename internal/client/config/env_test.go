package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays known variables", func(t *testing.T) {
		t.Setenv("BLOGTALKS_API_URL", "http://env.example:7000")
		t.Setenv("BLOGTALKS_TIMEOUT", "30s")
		t.Setenv("BLOGTALKS_PAGE_SIZE", "12")
		t.Setenv("BLOGTALKS_DB", "env.db")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://env.example:7000", cfg.APIBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 12, cfg.PageSize)
		assert.Equal(t, "env.db", cfg.DatabasePath)
	})

	t.Run("malformed values are ignored", func(t *testing.T) {
		t.Setenv("BLOGTALKS_TIMEOUT", "soon")
		t.Setenv("BLOGTALKS_PAGE_SIZE", "-1")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 9, cfg.PageSize)
	})
}
