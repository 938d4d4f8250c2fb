package services

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/fees"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// LedgerWriter mutates balances. Debits return sql.ErrNoRows when the
// balance does not cover the amount.
type LedgerWriter interface {
	CreditFiat(ctx context.Context, userID, currency string, amount int64) (int64, error)
	DebitFiat(ctx context.Context, userID, currency string, amount int64) (int64, error)
	CreditCrypto(ctx context.Context, userID string, asset models.CryptoAsset, amount int64) (int64, error)
	DebitCrypto(ctx context.Context, userID string, asset models.CryptoAsset, amount int64) (int64, error)
}

// LedgerReader reads balances.
type LedgerReader interface {
	GetFiatBalances(ctx context.Context, userID string) (map[string]int64, error)
	GetFiatBalance(ctx context.Context, userID, currency string) (int64, error)
	GetCryptoBalances(ctx context.Context, userID string) (map[models.CryptoAsset]int64, error)
	GetCryptoBalance(ctx context.Context, userID string, asset models.CryptoAsset) (int64, error)
}

// TransactionWriter appends to the transaction log.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.Transaction) error
}

// PinVerifier checks a user's PIN attempt.
type PinVerifier interface {
	Verify(ctx context.Context, userID, pin string) error
}

// FraudChecker scores a candidate transaction.
type FraudChecker interface {
	Assess(ctx context.Context, userID string, amount int64, currency string, op models.TransactionType) (models.RiskVerdict, error)
}

// TransferResult reports a completed fiat transfer.
type TransferResult struct {
	Fee                 int64
	SenderNewBalance    int64
	RecipientNewBalance int64
}

// TransferService moves fiat between users: PIN check, fraud check, guarded
// debit, credit, log. The per-user locks make the debit-credit pair atomic
// with respect to other operations on either user.
type TransferService struct {
	ledger    LedgerWriter
	balances  LedgerReader
	txns      TransactionWriter
	pins      PinVerifier
	fraud     FraudChecker
	users     UserReader
	locks     *UserLocks
	publisher *TransactionPublisher
	cfg       config.FeesConfig
}

func NewTransferService(
	ledger LedgerWriter,
	balances LedgerReader,
	txns TransactionWriter,
	pins PinVerifier,
	fraud FraudChecker,
	users UserReader,
	locks *UserLocks,
	publisher *TransactionPublisher,
	cfg config.FeesConfig,
) *TransferService {
	return &TransferService{
		ledger:    ledger,
		balances:  balances,
		txns:      txns,
		pins:      pins,
		fraud:     fraud,
		users:     users,
		locks:     locks,
		publisher: publisher,
		cfg:       cfg,
	}
}

// TransferFiat executes a user-to-user transfer. The fee is retained by the
// platform, not credited to any user balance here.
func (s *TransferService) TransferFiat(ctx context.Context, fromUser, toUser string, amount int64, currency, pin string) (*TransferResult, error) {
	if fromUser == toUser {
		return nil, errs.InvalidInput("Cannot transfer to self")
	}
	if amount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, fromUser, pin); err != nil {
		return nil, err
	}

	recipient, err := s.users.GetByID(ctx, toUser)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if recipient == nil {
		return nil, errs.NotFound("Recipient not found")
	}

	verdict, err := s.fraud.Assess(ctx, fromUser, amount, currency, models.TxTransferFiat)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if verdict.ShouldBlock {
		logger.Log.Warnw("transfer blocked", "from", fromUser, "to", toUser, "amount", amount, "warnings", verdict.Warnings)
		return nil, errs.Blocked(verdict.Warnings)
	}

	fee, err := fees.Fee(amount, s.cfg.TransferBasisPoints)
	if err != nil {
		return nil, err
	}
	if amount > math.MaxInt64-fee {
		return nil, errs.Overflow("Transfer total would overflow")
	}
	total := amount + fee

	unlock := s.locks.LockPair(fromUser, toUser)
	defer unlock()

	senderBalance, err := s.ledger.DebitFiat(ctx, fromUser, currency, total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetFiatBalance(ctx, fromUser, currency)
			if readErr != nil {
				return nil, errs.Internal(readErr)
			}
			return nil, errs.InsufficientBalance(have, total)
		}
		return nil, errs.Internal(err)
	}

	recipientBalance, err := s.ledger.CreditFiat(ctx, toUser, currency, amount)
	if err != nil {
		// The debit must not stand without its credit. Compensate and fail.
		if _, refundErr := s.ledger.CreditFiat(ctx, fromUser, currency, total); refundErr != nil {
			logger.Log.Errorw("failed to reverse debit after credit failure",
				"from", fromUser, "amount", total, "error", refundErr)
		}
		return nil, errs.Internal(err)
	}

	now := time.Now()
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Type:        models.TxTransferFiat,
		FromUser:    &fromUser,
		ToUser:      &toUser,
		Amount:      amount,
		Currency:    currency,
		Status:      models.TxStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	if err := s.txns.Save(ctx, &txn); err != nil {
		return nil, errs.Internal(err)
	}

	s.publisher.Publish(ctx, txn)

	return &TransferResult{
		Fee:                 fee,
		SenderNewBalance:    senderBalance,
		RecipientNewBalance: recipientBalance,
	}, nil
}
