package config

import "time"

// Config holds runtime settings for the onboarding client.
//
// Fields:
//   - StorageKind: "sqlite" or "memory".
//   - StorageDSN: SQLite file (or ":memory:") for the sqlite kind.
//   - PersistKey: root key of the persisted session ("persist:<key>").
//   - SimulatedLatency: how long login and registration pretend to take.
//   - SplashDelay: how long the splash screen stays up.
//   - StrictOrdering: drop settlements overtaken by a newer dispatch.
//   - Verbose: enable debug logging.
type Config struct {
	StorageKind      string
	StorageDSN       string
	PersistKey       string
	SimulatedLatency time.Duration
	SplashDelay      time.Duration
	StrictOrdering   bool
	Verbose          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageKind = "sqlite"
	c.StorageDSN = "session.db"
	c.PersistKey = "root"
	c.SimulatedLatency = 1 * time.Second
	c.SplashDelay = 3 * time.Second
	c.StrictOrdering = false
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
