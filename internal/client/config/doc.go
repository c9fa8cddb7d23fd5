// Package config loads runtime configuration for the GateKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-i int      online status check interval (seconds)
//	-f string   path of the local SQLite database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "online_check_interval": "3s",
//	  "local_db_path": "gatekeeper.db"
//	}
//
// LoadConfig is the entry point; it produces the Config the CLI runs with.
// Keys absent from the JSON file keep their earlier values, so a partial
// file overrides only what it names.
//
// The package does not read environment variables; the JSON file and flags
// are the only external sources.
package config
