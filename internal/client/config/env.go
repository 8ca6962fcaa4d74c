package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "CARDKEEPER"

// parseDotEnv overlays cfg with the CARDKEEPER_* entries of a dotenv file.
// The file is read, not exported, so JSON and the process environment are
// applied on top of it. A missing file is not an error; a malformed one or a
// bad timeout panics.
func parseDotEnv(cfg *Config, path string) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		panic(err)
	}

	if v, ok := values[envPrefix+"_SERVER_BASE_URL"]; ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := values[envPrefix+"_SESSION_DB_PATH"]; ok && v != "" {
		cfg.SessionDBPath = v
	}
	if v, ok := values[envPrefix+"_REQUEST_TIMEOUT"]; ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := values[envPrefix+"_LOG_LEVEL"]; ok && v != "" {
		cfg.LogLevel = v
	}
}

// parseEnv overlays cfg with CARDKEEPER_* variables. Unset variables leave
// the current value alone; malformed ones panic.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		panic(err)
	}
}
