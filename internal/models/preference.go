package models

import "time"

// NotificationPreference holds the per-account alert toggles seeded when
// an account is first created. Provisioning inserts this row exactly once
// and never updates it afterwards, so operator changes survive re-runs.
type NotificationPreference struct {
	UserID          string
	PlateNotVisible bool
	WarningExpired  bool
	VehicleDetected bool
	IncidentCreated bool
	UpdatedAt       time.Time
}
