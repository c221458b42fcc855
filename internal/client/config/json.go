package config

import (
	"encoding/json"
	"os"

	"github.com/Jtanchezz/GeneralStore/internal/flagx"
	"github.com/Jtanchezz/GeneralStore/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the notice TTL either as a string like
// "5s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	OperatingCurrency string         `json:"operating_currency"`
	Locale            string         `json:"locale"`
	NoticeTTL         timex.Duration `json:"notice_ttl"`
	LocalDBPath       string         `json:"local_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given, the function returns
// without touching cfg. Empty JSON fields keep the earlier value, so a file
// only has to mention what it changes.
//
// Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.OperatingCurrency != "" {
		cfg.OperatingCurrency = jc.OperatingCurrency
	}
	if jc.Locale != "" {
		cfg.Locale = jc.Locale
	}
	if jc.NoticeTTL.Duration > 0 {
		cfg.NoticeTTL = jc.NoticeTTL.Duration
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
