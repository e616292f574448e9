// Package config loads runtime settings for the taskkeeper CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the persisted collections (one JSON file
//     per collection key).
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DataDir  string
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".taskkeeper"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
