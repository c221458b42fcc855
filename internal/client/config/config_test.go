package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "USD", cfg.OperatingCurrency)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 5*time.Second, cfg.NoticeTTL)
	assert.Equal(t, "generalstore.db", cfg.LocalDBPath)
}
