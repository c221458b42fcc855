package config

import "time"

// Config holds runtime settings for the GeneralStore CLI.
//
// Fields:
//   - APIBaseURL: base address of the backend HTTP API.
//   - OperatingCurrency: the single currency offers and listings are
//     authored in, independent of the display currency.
//   - Locale: BCP 47 tag used for price formatting and the display
//     currency guess when the profile has no preference.
//   - NoticeTTL: how long transient user-facing notices stay visible.
//   - LocalDBPath: path of the local sqlite database holding the
//     persisted session credential.
type Config struct {
	APIBaseURL        string
	OperatingCurrency string
	Locale            string
	NoticeTTL         time.Duration
	LocalDBPath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.OperatingCurrency = "USD"
	c.Locale = "en-US"
	c.NoticeTTL = 5 * time.Second
	c.LocalDBPath = "generalstore.db"
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
