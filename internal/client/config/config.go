package config

import "time"

// Config holds runtime settings for the Yes-Chef CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout on the HTTP client.
//   - CredentialDB: path of the local sqlite file holding the anti-forgery token.
//   - RedirectAuthenticated: whether authenticated users get bounced off
//     guest-only routes (login/register) by the navigation guard.
type Config struct {
	APIBaseURL            string
	RequestTimeout        time.Duration
	CredentialDB          string
	RedirectAuthenticated bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.CredentialDB = "yeschef.db"
	c.RedirectAuthenticated = true
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
