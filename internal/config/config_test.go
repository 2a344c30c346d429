package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"provision"}

	cfg := LoadConfig()
	assert.Equal(t, "plakawatch.db", cfg.DatabaseDSN)
	assert.Equal(t, "setup-accounts.config.json", cfg.AccountsPath)
	assert.Equal(t, "setup-accounts.config.example.json", cfg.ExamplePath)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"provision", "-d", "postgres://app:app@db:5432/plakawatch", "-c", "alt.json"}

	cfg := LoadConfig()
	assert.Equal(t, "postgres://app:app@db:5432/plakawatch", cfg.DatabaseDSN)
	assert.Equal(t, "alt.json", cfg.AccountsPath)
}

func TestLoadConfig_LongConfigFlag(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"provision", "-config", "other.json"}

	cfg := LoadConfig()
	assert.Equal(t, "other.json", cfg.AccountsPath)
}
