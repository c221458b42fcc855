// Package config loads runtime configuration for the GeneralStore CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend API
//	-l string   locale tag for price formatting
//	-d string   path of the local database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the notice TTL, so it can be
// either a string like "5s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "operating_currency": "USD",
//	  "locale": "es-MX",
//	  "notice_ttl": "5s",
//	  "local_db_path": "generalstore.db"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
