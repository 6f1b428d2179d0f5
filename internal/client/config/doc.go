// Package config loads runtime configuration for the onboarding client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   storage kind: sqlite | memory
//	-d string   SQLite database file
//	-k string   persisted session key
//	-l int      simulated login/register latency (milliseconds)
//	-splash int splash screen delay (milliseconds)
//	-strict     drop settlements overtaken by a newer dispatch
//	-v          debug logging
//
// # File schema
//
// Durations are timex.Duration values, so "750ms" and 750000000 are both
// accepted:
//
//	storage_kind: sqlite
//	storage_dsn: session.db
//	persist_key: root
//	simulated_latency: 1s
//	splash_delay: 3s
//	strict_ordering: false
//	verbose: false
//
// The package does not read environment variables.
package config
