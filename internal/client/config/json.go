package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authpanel/internal/flagx"
)

// JsonConfig mirrors the config file. Pointer fields tell "absent" from
// "empty".
type JsonConfig struct {
	StoragePath  *string `json:"storage_path"`
	DashboardURL *string `json:"dashboard_url"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.DashboardURL != nil {
		cfg.DashboardURL = *jc.DashboardURL
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
