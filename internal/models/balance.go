package models

import "time"

// CryptoAsset identifies one of the two supported crypto assets.
type CryptoAsset string

const (
	AssetBTC  CryptoAsset = "BTC"
	AssetUSDC CryptoAsset = "USDC"
)

// FiatBalance is one row per (user, currency), created lazily on first
// credit. Balance is in integer minor units and never negative.
type FiatBalance struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Currency  string    `json:"currency" db:"currency"`
	Balance   int64     `json:"balance" db:"balance"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CryptoBalance holds both crypto asset balances for a user, in each asset's
// smallest unit. Never negative.
type CryptoBalance struct {
	UserID    string    `json:"user_id" db:"user_id"`
	BTC       int64     `json:"btc" db:"btc"`
	USDC      int64     `json:"usdc" db:"usdc"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AgentBalance accrues an agent's cash-operation totals and earned
// commission. Commission is accrual only; payout is a settlement concern
// outside this core.
type AgentBalance struct {
	AgentID          string    `json:"agent_id" db:"agent_id"`
	Currency         string    `json:"currency" db:"currency"`
	TotalDeposits    int64     `json:"total_deposits" db:"total_deposits"`
	TotalWithdrawals int64     `json:"total_withdrawals" db:"total_withdrawals"`
	CommissionEarned int64     `json:"commission_earned" db:"commission_earned"`
	LastUpdated      time.Time `json:"last_updated" db:"last_updated"`
}
