package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"client", "-u", "http://other:8080", "-l", "de-DE"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://other:8080", cfg.APIBaseURL)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "generalstore.db", cfg.LocalDBPath)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"client"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
}
