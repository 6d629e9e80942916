package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/nkondratyk93/mvp-punchclock/internal/cli"
	"github.com/nkondratyk93/mvp-punchclock/internal/config"
	"github.com/nkondratyk93/mvp-punchclock/internal/kv"
	"github.com/nkondratyk93/mvp-punchclock/internal/store"
	"github.com/nkondratyk93/mvp-punchclock/internal/track"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings live under ~/.punchclock unless overridden.
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".punchclock")

	cfgPath := os.Getenv("PUNCHCLOCK_CONFIG")
	if cfgPath == "" {
		cfgPath = filepath.Join(dir, "config.toml")
	}
	cfg, err := config.Load(dir, cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open storage; when it cannot be opened the store degrades to an
	// in-memory collection rather than failing, per the storage
	// contract.
	var slots kv.Store
	sqlite, err := kv.OpenSQLite(cfg.DBPath)
	if err != nil {
		slots = kv.NewMemory()
	} else {
		slots = sqlite
		defer sqlite.Close()
	}

	var collector track.Collector = track.Noop{}
	if cfg.Track {
		collector = track.NewLogger(os.Stderr)
	}

	app := &cli.App{
		Entries: store.NewEntryStore(slots),
		Tracker: collector,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
