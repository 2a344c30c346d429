package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/plakawatch/provision/internal/common"
)

// AccountSpec is one desired login account as declared in the accounts file.
type AccountSpec struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AccountsFile is the declarative shape of setup-accounts.config.json:
// exactly one administrator plus any number of guards.
type AccountsFile struct {
	Admin  AccountSpec   `json:"admin"`
	Guards []AccountSpec `json:"guards"`
}

// LoadAccounts reads the accounts file at path. A missing file is not an
// error: (nil, nil) is returned and the caller falls back to interactive
// prompts. An unreadable or syntactically invalid file is reported so the
// caller can warn and still fall back.
func LoadAccounts(path string) (*AccountsFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f := &AccountsFile{}
	if err := json.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Validate checks the fields that are required for a run to proceed.
// A file without admin email and password is a fatal, user-correctable
// error; incomplete guard entries are tolerated and skipped later.
func (f *AccountsFile) Validate() error {
	if f.Admin.Email == "" || f.Admin.Password == "" {
		return common.ErrorConfigInvalid
	}
	return nil
}
