package config

import (
	"flag"
	"os"

	"github.com/plakawatch/provision/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string          database DSN (SQLite path or postgres:// URL)
//	-c/-config string  path to the accounts file
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-c", "-config"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AccountsPath, "config", config.AccountsPath, "path to accounts file")
	fs.StringVar(&config.AccountsPath, "c", config.AccountsPath, "path to accounts file (short)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
