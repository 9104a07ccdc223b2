// Package config loads runtime configuration for the authpanel CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-s string   SQLite file backing the store
//	-d string   destination opened after a successful login
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "storage_path": "authpanel.db",
//	  "dashboard_url": "dashboard.html",
//	  "log_level": "info"
//	}
//
// Keys missing from the JSON file keep their previous value.
package config
