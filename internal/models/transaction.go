package models

import "time"

// TransactionType enumerates every money movement the ledger records.
type TransactionType string

const (
	TxDepositFiat     TransactionType = "deposit_fiat"
	TxWithdrawFiat    TransactionType = "withdraw_fiat"
	TxTransferFiat    TransactionType = "transfer_fiat"
	TxBuyCrypto       TransactionType = "buy_crypto"
	TxSellCrypto      TransactionType = "sell_crypto"
	TxTransferCrypto  TransactionType = "transfer_crypto"
	TxSwapCrypto      TransactionType = "swap_crypto"
	TxEscrowCreate    TransactionType = "escrow_create"
	TxEscrowClaim     TransactionType = "escrow_claim"
	TxEscrowCancel    TransactionType = "escrow_cancel"
	TxAgentCommission TransactionType = "agent_commission"
)

// Transaction is an append-only log entry recording one finalized effect.
// Entries are never mutated after insertion; the fraud engine reads this log
// as its evidence source.
type Transaction struct {
	ID          string          `json:"id" db:"id"`
	Type        TransactionType `json:"type" db:"type"`
	FromUser    *string         `json:"from_user" db:"from_user"`
	ToUser      *string         `json:"to_user" db:"to_user"`
	Amount      int64           `json:"amount" db:"amount"`
	Currency    string          `json:"currency" db:"currency"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	CompletedAt *time.Time      `json:"completed_at" db:"completed_at"`
	Description *string         `json:"description" db:"description"`
}

// TxStatusCompleted is the only status the append-only log records.
const TxStatusCompleted = "completed"
