package config

import "time"

const (
	DefaultServerBaseURL  = "http://localhost:9090/api"
	DefaultSessionDBPath  = "cardkeeper.db"
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogLevel       = "info"
)

// Config holds runtime settings for the cardkeeper CLI.
//
// Fields:
//   - ServerBaseURL: root of the REST API, "/api" included.
//   - SessionDBPath: SQLite file that keeps the session between runs.
//   - RequestTimeout: upper bound for a single API call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string        `split_words:"true"`
	SessionDBPath  string        `split_words:"true"`
	RequestTimeout time.Duration `split_words:"true"`
	LogLevel       string        `split_words:"true"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = DefaultServerBaseURL
	c.SessionDBPath = DefaultSessionDBPath
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = DefaultLogLevel
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a .env file, JSON (if present), the environment and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseDotEnv(cfg, ".env")
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
