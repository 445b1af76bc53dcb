// Package config loads runtime configuration for the driverdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed DRIVERDESK_, with a .env file in the
//     working directory loaded first if present (see parseEnv).
//  3. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON (see parseFile).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-u string   login name accepted by the gate
//	-m int      failed attempts before lockout
//	-l int      lockout duration (seconds)
//	-i int      inactivity timeout (seconds)
//	-v string   log level: debug, info, warn, error
//
// # File schema
//
// Durations are timex.Duration, so either "60s" or integer nanoseconds:
//
//	{
//	  "username": "inspector",
//	  "password_hash": "98fe44...",
//	  "hash_algorithm": "sha256",
//	  "max_attempts": 3,
//	  "lock_duration": "60s",
//	  "inactivity_timeout": "60s",
//	  "max_photo_size": 2097152,
//	  "require_cities": false,
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_file": ""
//	}
//
// The YAML form uses the same keys.
package config
