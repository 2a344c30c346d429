package config

import (
	"encoding/json"
	"os"
)

// WriteExampleIfAbsent writes a template accounts file to path so the
// operator has a starting point for authoring a real one. An existing file
// is never touched. Returns true when a new file was written.
func WriteExampleIfAbsent(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	example := AccountsFile{
		Admin: AccountSpec{
			Email:    "admin@plakawatch.local",
			Password: "PlakaWatch123!",
			Name:     "Admin",
		},
		Guards: []AccountSpec{
			{Email: "guard1@plakawatch.local", Password: "Guard123!", Name: "Guard One"},
			{Email: "guard2@plakawatch.local", Password: "Guard123!", Name: "Guard Two"},
		},
	}

	raw, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
