// Package config handles runtime configuration for the provisioning tool:
// defaults, command-line flags, and the declarative accounts file.
package config

// Config holds runtime settings for a provisioning run.
//
// Fields:
//   - DatabaseDSN: where the user store lives. A plain path opens a local
//     SQLite database file; a postgres:// DSN opens PostgreSQL via pgx.
//   - AccountsPath: path to the declarative accounts file. When the file is
//     absent the tool falls back to interactive prompts.
//   - ExamplePath: where the example accounts file is written (only if absent).
type Config struct {
	DatabaseDSN  string
	AccountsPath string
	ExamplePath  string
}

// LoadDefaults populates Config with the conventions of a site-local
// installation: the application database file and the accounts file next to
// the binary's working directory.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "plakawatch.db"
	c.AccountsPath = "setup-accounts.config.json"
	c.ExamplePath = "setup-accounts.config.example.json"
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
