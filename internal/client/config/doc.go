// Package config loads runtime configuration for the recruit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file in the
//     working directory. Variables already set in the process win over .env.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the recruiting API
//	-d string   path of the local session database
//	-t int      request timeout (seconds, 0 = no client timeout)
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	RECRUIT_API_URL, RECRUIT_DB_PATH, RECRUIT_REQUEST_TIMEOUT ("15s"), RECRUIT_LOG_LEVEL
//
// # JSON schema
//
// Durations use timex.Duration, so "15s" and integer nanoseconds both work.
// Absent or empty fields keep the value from earlier sources.
//
//	{
//	  "api_base_url": "http://localhost:3001/api",
//	  "database_path": "recruit.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
