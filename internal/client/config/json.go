package config

import (
	"encoding/json"
	"os"

	"github.com/JanieKaren/yeschef-cli/internal/flagx"
	"github.com/JanieKaren/yeschef-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "15s" or
// as integer nanoseconds. Pointer fields distinguish "absent" from a zero
// value, so a sparse file only overrides what it names.
type JsonConfig struct {
	APIBaseURL            *string         `json:"api_base_url"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	CredentialDB          *string         `json:"credential_db"`
	RedirectAuthenticated *bool           `json:"redirect_authenticated"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; without them nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
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

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CredentialDB != nil {
		cfg.CredentialDB = *jc.CredentialDB
	}
	if jc.RedirectAuthenticated != nil {
		cfg.RedirectAuthenticated = *jc.RedirectAuthenticated
	}
}
