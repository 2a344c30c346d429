// Package common defines sentinel errors shared across the provisioning
// tool. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Fatal startup errors.
	ErrorStoreUnavailable = errors.New("database not ready")
	ErrorConfigInvalid    = errors.New("config must have admin.email and admin.password")
)
