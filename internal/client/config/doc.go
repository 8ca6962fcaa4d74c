// Package config loads runtime configuration for the cardkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. CARDKEEPER_* entries of a .env file in the working directory (see
//     parseDotEnv). The file is read, never exported to the environment.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Environment variables prefixed with CARDKEEPER_ (see parseEnv).
//  5. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API, e.g. http://localhost:9090/api
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	CARDKEEPER_SERVER_BASE_URL
//	CARDKEEPER_SESSION_DB_PATH
//	CARDKEEPER_REQUEST_TIMEOUT   Go duration, e.g. "20s"
//	CARDKEEPER_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds. Missing keys keep their value:
//
//	{
//	  "server_base_url": "http://localhost:9090/api",
//	  "session_db_path": "cardkeeper.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
