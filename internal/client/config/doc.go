// Package config loads runtime configuration for the Yes-Chef CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-d string   path of the credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://yes-chef.example.com/api",
//	  "request_timeout": "15s",
//	  "credential_db": "yeschef.db",
//	  "redirect_authenticated": true
//	}
//
// The redirect_authenticated policy has no flag form; set it in the JSON
// file when the default does not suit.
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
