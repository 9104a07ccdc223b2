package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/authpanel/internal/flagx"
)

// parseFlags overlays cfg with -s, -d and -l. Other arguments (including
// -c/-config) are filtered out first.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-s", "-d", "-l"})

	fs := flag.NewFlagSet("authpanel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "SQLite file backing the store")
	fs.StringVar(&cfg.DashboardURL, "d", cfg.DashboardURL, "destination opened after login")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
