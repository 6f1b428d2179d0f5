package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophonboard/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the
// flags handled here are picked out of os.Args (see flagx.FilterArgs), so
// -c/-config and anything else is left alone. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-k", "-l", "-splash", "-strict", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageKind, "s", cfg.StorageKind, "storage kind (sqlite|memory)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "SQLite database file")
	fs.StringVar(&cfg.PersistKey, "k", cfg.PersistKey, "persisted session key")
	latency := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated latency (in milliseconds)")
	splash := fs.Int("splash", int(cfg.SplashDelay.Milliseconds()), "splash delay (in milliseconds)")
	fs.BoolVar(&cfg.StrictOrdering, "strict", cfg.StrictOrdering, "drop settlements overtaken by a newer dispatch")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedLatency = time.Duration(*latency) * time.Millisecond
	cfg.SplashDelay = time.Duration(*splash) * time.Millisecond
}
