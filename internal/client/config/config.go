package config

import "os"

// Config holds runtime settings for the CLI.
type Config struct {
	StoragePath  string
	DashboardURL string
	LogLevel     string
}

func (c *Config) LoadDefaults() {
	c.StoragePath = "authpanel.db"
	c.DashboardURL = "dashboard.html"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file, then flags from os.Args.
// Unreadable JSON or bad flags panic.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
