package models

import "time"

// UserType distinguishes regular users from cash-in/cash-out agents.
type UserType string

const (
	UserTypeUser  UserType = "user"
	UserTypeAgent UserType = "agent"
)

// KYCStatus tracks a user's identity-verification progress.
type KYCStatus string

const (
	KYCNotStarted KYCStatus = "not_started"
	KYCPending    KYCStatus = "pending"
	KYCApproved   KYCStatus = "approved"
	KYCRejected   KYCStatus = "rejected"
)

// User is the identity anchor. At least one of PhoneNumber or PrincipalID is
// set; both are unique across all users and can be linked later but never
// unlinked.
type User struct {
	ID                string     `json:"id" db:"id"`
	UserType          UserType   `json:"user_type" db:"user_type"`
	PhoneNumber       *string    `json:"phone_number" db:"phone_number"`
	PrincipalID       *string    `json:"principal_id" db:"principal_id"`
	FirstName         string     `json:"first_name" db:"first_name"`
	LastName          string     `json:"last_name" db:"last_name"`
	Email             string     `json:"email" db:"email"`
	PreferredCurrency string     `json:"preferred_currency" db:"preferred_currency"`
	KYCStatus         KYCStatus  `json:"kyc_status" db:"kyc_status"`
	IsVerified        bool       `json:"is_verified" db:"is_verified"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	LastActive        time.Time  `json:"last_active" db:"last_active"`
}
