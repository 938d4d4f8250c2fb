package models

import "time"

// RequestStatus is the code/escrow state machine:
// pending -> confirmed | cancelled | expired.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusConfirmed RequestStatus = "confirmed"
	StatusCancelled RequestStatus = "cancelled"
	StatusExpired   RequestStatus = "expired"
)

// DepositRequest is an agent-mediated cash-in awaiting confirmation. No user
// funds move until the agent confirms the code.
type DepositRequest struct {
	ID              string        `json:"id" db:"id"`
	UserID          string        `json:"user_id" db:"user_id"`
	AgentID         string        `json:"agent_id" db:"agent_id"`
	Amount          int64         `json:"amount" db:"amount"`
	Currency        string        `json:"currency" db:"currency"`
	AgentCommission int64         `json:"agent_commission" db:"agent_commission"`
	AgentKeeps      int64         `json:"agent_keeps" db:"agent_keeps"`
	PlatformRevenue int64         `json:"platform_revenue" db:"platform_revenue"`
	Code            string        `json:"code" db:"code"`
	Status          RequestStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	ExpiresAt       time.Time     `json:"expires_at" db:"expires_at"`
	ConfirmedAt     *time.Time    `json:"confirmed_at" db:"confirmed_at"`
}

// WithdrawalRequest is an agent-mediated cash-out. Creation debits the user
// by amount+TotalFees as a hold; cancellation or expiry must refund the full
// hold. Fee figures are fixed at quote time.
type WithdrawalRequest struct {
	ID              string        `json:"id" db:"id"`
	UserID          string        `json:"user_id" db:"user_id"`
	AgentID         string        `json:"agent_id" db:"agent_id"`
	Amount          int64         `json:"amount" db:"amount"`
	Currency        string        `json:"currency" db:"currency"`
	AgentFee        int64         `json:"agent_fee" db:"agent_fee"`
	PlatformFee     int64         `json:"platform_fee" db:"platform_fee"`
	TotalFees       int64         `json:"total_fees" db:"total_fees"`
	AgentKeeps      int64         `json:"agent_keeps" db:"agent_keeps"`
	PlatformRevenue int64         `json:"platform_revenue" db:"platform_revenue"`
	Code            string        `json:"code" db:"code"`
	Status          RequestStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	ExpiresAt       time.Time     `json:"expires_at" db:"expires_at"`
	ConfirmedAt     *time.Time    `json:"confirmed_at" db:"confirmed_at"`
}
