package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophonboard/internal/flagx"
	"github.com/dmitrijs2005/gophonboard/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for config files. Pointer fields tell "absent" from
// zero, so a file only overrides what it mentions.
type FileConfig struct {
	StorageKind      *string         `json:"storage_kind" yaml:"storage_kind"`
	StorageDSN       *string         `json:"storage_dsn" yaml:"storage_dsn"`
	PersistKey       *string         `json:"persist_key" yaml:"persist_key"`
	SimulatedLatency *timex.Duration `json:"simulated_latency" yaml:"simulated_latency"`
	SplashDelay      *timex.Duration `json:"splash_delay" yaml:"splash_delay"`
	StrictOrdering   *bool           `json:"strict_ordering" yaml:"strict_ordering"`
	Verbose          *bool           `json:"verbose" yaml:"verbose"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.StorageKind != nil {
		cfg.StorageKind = *fc.StorageKind
	}
	if fc.StorageDSN != nil {
		cfg.StorageDSN = *fc.StorageDSN
	}
	if fc.PersistKey != nil {
		cfg.PersistKey = *fc.PersistKey
	}
	if fc.SimulatedLatency != nil {
		cfg.SimulatedLatency = fc.SimulatedLatency.Duration
	}
	if fc.SplashDelay != nil {
		cfg.SplashDelay = fc.SplashDelay.Duration
	}
	if fc.StrictOrdering != nil {
		cfg.StrictOrdering = *fc.StrictOrdering
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
}
