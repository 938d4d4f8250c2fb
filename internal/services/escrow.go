package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AfriTokeni/afritokeni-core/internal/codes"
	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/middlewares"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// EscrowWriter mutates escrows. Reopen reverses an expiry flip whose refund
// failed, so the escrowed amount is retried instead of stranded.
type EscrowWriter interface {
	Save(ctx context.Context, escrow *models.Escrow) error
	UpdateStatus(ctx context.Context, code string, status models.RequestStatus) (*models.Escrow, error)
	Reopen(ctx context.Context, code string) error
}

// EscrowReader looks up escrows.
type EscrowReader interface {
	GetByCode(ctx context.Context, code string) (*models.Escrow, error)
}

// EscrowService holds crypto pending a physical cash handover. Creation
// debits the user immediately; only the matching agent can claim, only the
// owner can cancel, and the sweeper refunds anything that expires.
type EscrowService struct {
	writer    EscrowWriter
	reader    EscrowReader
	ledger    LedgerWriter
	balances  LedgerReader
	txns      TransactionWriter
	pins      PinVerifier
	seq       Sequencer
	locks     *UserLocks
	publisher *TransactionPublisher
	cfg       config.CodesConfig
	now       func() time.Time
}

func NewEscrowService(
	writer EscrowWriter,
	reader EscrowReader,
	ledger LedgerWriter,
	balances LedgerReader,
	txns TransactionWriter,
	pins PinVerifier,
	seq Sequencer,
	locks *UserLocks,
	publisher *TransactionPublisher,
	cfg config.CodesConfig,
) *EscrowService {
	return &EscrowService{
		writer:    writer,
		reader:    reader,
		ledger:    ledger,
		balances:  balances,
		txns:      txns,
		pins:      pins,
		seq:       seq,
		locks:     locks,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Create debits the user's crypto and stores a pending escrow.
func (s *EscrowService) Create(ctx context.Context, userID, agentID string, asset models.CryptoAsset, amount int64, pin string) (*models.Escrow, error) {
	if amount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}

	seq, err := s.seq.Next(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if _, err := s.ledger.DebitCrypto(ctx, userID, asset, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetCryptoBalance(ctx, userID, asset)
			if readErr != nil {
				return nil, errs.Internal(readErr)
			}
			return nil, errs.InsufficientBalance(have, amount)
		}
		return nil, errs.Internal(err)
	}

	now := s.now()
	escrow := &models.Escrow{
		Code:      codes.Generate(s.cfg.EscrowPrefix, userID, seq, now),
		UserID:    userID,
		AgentID:   agentID,
		Asset:     asset,
		Amount:    amount,
		Status:    models.StatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.EscrowTTL),
	}

	if err := s.writer.Save(ctx, escrow); err != nil {
		if _, refundErr := s.ledger.CreditCrypto(ctx, userID, asset, amount); refundErr != nil {
			logger.Log.Errorw("failed to refund escrow debit after save failure",
				"user_id", userID, "amount", amount, "error", refundErr)
		}
		return nil, errs.Internal(err)
	}

	if err := s.logEscrow(ctx, models.TxEscrowCreate, escrow, &userID, nil); err != nil {
		return nil, err
	}

	return escrow, nil
}

// Claim credits the escrowed crypto to the matching agent.
func (s *EscrowService) Claim(ctx context.Context, code, agentID string) (*models.Escrow, error) {
	if err := codes.Validate(code, s.cfg.EscrowPrefix); err != nil {
		return nil, err
	}

	escrow, err := s.reader.GetByCode(ctx, code)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if escrow == nil {
		return nil, errs.NotFound("Escrow not found")
	}
	if escrow.AgentID != agentID {
		return nil, errs.NotAuthorized("Escrow belongs to a different agent")
	}
	if escrow.Status != models.StatusPending {
		if escrow.Status == models.StatusExpired {
			return nil, errs.Expired("Escrow has expired")
		}
		return nil, errs.AlreadyProcessed("Escrow already processed")
	}

	unlock := s.locks.LockPair(escrow.UserID, agentID)
	defer unlock()

	if s.now().After(escrow.ExpiresAt) {
		// The expiry flip and refund must outlive this request: it answers
		// with an error status, which rolls the request transaction back.
		if err := s.expireAndRefund(middlewares.WithoutTx(ctx), escrow); err != nil {
			return nil, err
		}
		return nil, errs.Expired("Escrow has expired")
	}

	claimed, err := s.writer.UpdateStatus(ctx, code, models.StatusConfirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.AlreadyProcessed("Escrow already processed")
		}
		return nil, errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, claimed.AgentID, claimed.Asset, claimed.Amount); err != nil {
		return nil, errs.Internal(err)
	}

	if err := s.logEscrow(ctx, models.TxEscrowClaim, claimed, &claimed.UserID, &claimed.AgentID); err != nil {
		return nil, err
	}

	return claimed, nil
}

// Cancel refunds the escrowed crypto to the owning user.
func (s *EscrowService) Cancel(ctx context.Context, code, userID string) (*models.Escrow, error) {
	if err := codes.Validate(code, s.cfg.EscrowPrefix); err != nil {
		return nil, err
	}

	escrow, err := s.reader.GetByCode(ctx, code)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if escrow == nil {
		return nil, errs.NotFound("Escrow not found")
	}
	if escrow.UserID != userID {
		return nil, errs.NotAuthorized("Only the escrow owner can cancel")
	}
	if escrow.Status != models.StatusPending {
		return nil, errs.AlreadyProcessed("Escrow already processed")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	cancelled, err := s.writer.UpdateStatus(ctx, code, models.StatusCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.AlreadyProcessed("Escrow already processed")
		}
		return nil, errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, cancelled.UserID, cancelled.Asset, cancelled.Amount); err != nil {
		return nil, errs.Internal(err)
	}

	if err := s.logEscrow(ctx, models.TxEscrowCancel, cancelled, &cancelled.UserID, nil); err != nil {
		return nil, err
	}

	return cancelled, nil
}

func (s *EscrowService) expireAndRefund(ctx context.Context, escrow *models.Escrow) error {
	expired, err := s.writer.UpdateStatus(ctx, escrow.Code, models.StatusExpired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, expired.UserID, expired.Asset, expired.Amount); err != nil {
		// Put the escrow back so the sweeper retries the refund.
		if reopenErr := s.writer.Reopen(ctx, escrow.Code); reopenErr != nil {
			logger.Log.Errorw("failed to reopen escrow after refund failure",
				"code", escrow.Code, "error", reopenErr)
		}
		return errs.Internal(err)
	}

	logger.Log.Infow("escrow expired", "code", escrow.Code, "refunded", expired.Amount)
	return nil
}

func (s *EscrowService) logEscrow(ctx context.Context, txType models.TransactionType, escrow *models.Escrow, from, to *string) error {
	now := s.now()
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		FromUser:    from,
		ToUser:      to,
		Amount:      escrow.Amount,
		Currency:    string(escrow.Asset),
		Status:      models.TxStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
		Description: &escrow.Code,
	}
	if err := s.txns.Save(ctx, &txn); err != nil {
		return errs.Internal(err)
	}
	s.publisher.Publish(ctx, txn)
	return nil
}
