package models

import "time"

// Escrow holds crypto pending a physical cash handover between a user and an
// agent. Creation debits the user's crypto balance; claim credits the agent,
// cancellation or expiry refunds the user.
type Escrow struct {
	Code      string        `json:"code" db:"code"`
	UserID    string        `json:"user_id" db:"user_id"`
	AgentID   string        `json:"agent_id" db:"agent_id"`
	Asset     CryptoAsset   `json:"asset" db:"asset"`
	Amount    int64         `json:"amount" db:"amount"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	ExpiresAt time.Time     `json:"expires_at" db:"expires_at"`
	ClaimedAt *time.Time    `json:"claimed_at" db:"claimed_at"`
}
