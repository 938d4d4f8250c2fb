package models

import "time"

// PinRecord is the stored credential for one user: the scrypt hash, the
// consecutive-failure counter and the lockout deadline, if any.
type PinRecord struct {
	UserID         string     `json:"user_id" db:"user_id"`
	PinHash        string     `json:"-" db:"pin_hash"`
	FailedAttempts int        `json:"failed_attempts" db:"failed_attempts"`
	LockedUntil    *time.Time `json:"locked_until" db:"locked_until"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
