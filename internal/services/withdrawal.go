package services

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AfriTokeni/afritokeni-core/internal/codes"
	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/fees"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/middlewares"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// WithdrawalRequestWriter mutates withdrawal requests. Reopen reverses an
// expiry flip whose refund failed, so the hold is retried instead of
// stranded.
type WithdrawalRequestWriter interface {
	Save(ctx context.Context, req *models.WithdrawalRequest) error
	UpdateStatus(ctx context.Context, code string, status models.RequestStatus) (*models.WithdrawalRequest, error)
	Reopen(ctx context.Context, code string) error
}

// WithdrawalRequestReader looks up withdrawal requests.
type WithdrawalRequestReader interface {
	GetByCode(ctx context.Context, code string) (*models.WithdrawalRequest, error)
}

// WithdrawalService runs the agent-mediated cash-out flow with reservation
// semantics: creation immediately debits amount plus fees as a hold, and
// every path that does not end in confirmation must refund the full hold.
type WithdrawalService struct {
	writer    WithdrawalRequestWriter
	reader    WithdrawalRequestReader
	ledger    LedgerWriter
	balances  LedgerReader
	txns      TransactionWriter
	pins      PinVerifier
	fraud     FraudChecker
	agents    AgentBalanceAccruer
	seq       Sequencer
	locks     *UserLocks
	publisher *TransactionPublisher
	cfg       config.Config
	now       func() time.Time
}

func NewWithdrawalService(
	writer WithdrawalRequestWriter,
	reader WithdrawalRequestReader,
	ledger LedgerWriter,
	balances LedgerReader,
	txns TransactionWriter,
	pins PinVerifier,
	fraud FraudChecker,
	agents AgentBalanceAccruer,
	seq Sequencer,
	locks *UserLocks,
	publisher *TransactionPublisher,
	cfg config.Config,
) *WithdrawalService {
	return &WithdrawalService{
		writer:    writer,
		reader:    reader,
		ledger:    ledger,
		balances:  balances,
		txns:      txns,
		pins:      pins,
		fraud:     fraud,
		agents:    agents,
		seq:       seq,
		locks:     locks,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateRequest issues a pending withdrawal code and holds amount+fees. Fee
// figures are fixed here; confirmation settles exactly what was quoted.
func (s *WithdrawalService) CreateRequest(ctx context.Context, userID, agentID string, amount int64, currency, pin string) (*models.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}

	limits := s.cfg.LimitsFor(currency)
	if amount < limits.MinWithdrawal {
		return nil, errs.LimitViolation("Amount %d is below the minimum withdrawal of %d %s", amount, limits.MinWithdrawal, currency)
	}
	if amount > limits.MaxWithdrawal {
		return nil, errs.LimitViolation("Amount %d exceeds the maximum withdrawal of %d %s", amount, limits.MaxWithdrawal, currency)
	}

	verdict, err := s.fraud.Assess(ctx, userID, amount, currency, models.TxWithdrawFiat)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if verdict.ShouldBlock {
		return nil, errs.Blocked(verdict.Warnings)
	}

	breakdown, err := fees.CalculateWithdrawal(amount, s.cfg.Fees.Withdrawal)
	if err != nil {
		return nil, err
	}
	if amount > math.MaxInt64-breakdown.TotalFees {
		return nil, errs.Overflow("Withdrawal hold would overflow")
	}
	hold := amount + breakdown.TotalFees

	seq, err := s.seq.Next(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if _, err := s.ledger.DebitFiat(ctx, userID, currency, hold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetFiatBalance(ctx, userID, currency)
			if readErr != nil {
				return nil, errs.Internal(readErr)
			}
			return nil, errs.InsufficientBalance(have, hold)
		}
		return nil, errs.Internal(err)
	}

	now := s.now()
	req := &models.WithdrawalRequest{
		ID:              uuid.New().String(),
		UserID:          userID,
		AgentID:         agentID,
		Amount:          amount,
		Currency:        currency,
		AgentFee:        breakdown.AgentFee,
		PlatformFee:     breakdown.PlatformOperationFee,
		TotalFees:       breakdown.TotalFees,
		AgentKeeps:      breakdown.AgentKeeps,
		PlatformRevenue: breakdown.TotalPlatformRevenue,
		Code:            codes.Generate(s.cfg.Codes.WithdrawalPrefix, agentID, seq, now),
		Status:          models.StatusPending,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.cfg.Codes.CodeTTL),
	}

	if err := s.writer.Save(ctx, req); err != nil {
		// The hold must not stand without its request. Refund and fail.
		if _, refundErr := s.ledger.CreditFiat(ctx, userID, currency, hold); refundErr != nil {
			logger.Log.Errorw("failed to refund withdrawal hold after save failure",
				"user_id", userID, "amount", hold, "error", refundErr)
		}
		return nil, errs.Internal(err)
	}

	logger.Log.Infow("withdrawal request created",
		"code", req.Code, "user_id", userID, "agent_id", agentID, "amount", amount, "hold", hold)

	return req, nil
}

// Confirm settles a pending withdrawal. The agent hands over cash; the hold
// stays debited and the agent's commission accrues.
func (s *WithdrawalService) Confirm(ctx context.Context, code, agentID, agentPin string) (*models.WithdrawalRequest, error) {
	if err := codes.Validate(code, s.cfg.Codes.WithdrawalPrefix); err != nil {
		return nil, err
	}

	if err := s.pins.Verify(ctx, agentID, agentPin); err != nil {
		return nil, err
	}

	req, err := s.reader.GetByCode(ctx, code)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if req == nil {
		return nil, errs.NotFound("Withdrawal code not found")
	}
	if req.AgentID != agentID {
		return nil, errs.NotAuthorized("Code belongs to a different agent")
	}
	if req.Status != models.StatusPending {
		if req.Status == models.StatusExpired {
			return nil, errs.Expired("Withdrawal code has expired")
		}
		return nil, errs.AlreadyProcessed("Withdrawal code already processed")
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	if s.now().After(req.ExpiresAt) {
		// The expiry flip and refund must outlive this request: it answers
		// with an error status, which rolls the request transaction back.
		if err := s.expireAndRefund(middlewares.WithoutTx(ctx), req); err != nil {
			return nil, err
		}
		return nil, errs.Expired("Withdrawal code has expired")
	}

	confirmed, err := s.writer.UpdateStatus(ctx, code, models.StatusConfirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.AlreadyProcessed("Withdrawal code already processed")
		}
		return nil, errs.Internal(err)
	}

	if err := s.agents.Accrue(ctx, confirmed.AgentID, confirmed.Currency, 0, confirmed.Amount, confirmed.AgentKeeps); err != nil {
		return nil, errs.Internal(err)
	}

	now := s.now()
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Type:        models.TxWithdrawFiat,
		FromUser:    &confirmed.UserID,
		ToUser:      &confirmed.AgentID,
		Amount:      confirmed.Amount,
		Currency:    confirmed.Currency,
		Status:      models.TxStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
		Description: &confirmed.Code,
	}
	if err := s.txns.Save(ctx, &txn); err != nil {
		return nil, errs.Internal(err)
	}

	s.publisher.Publish(ctx, txn)

	return confirmed, nil
}

// Cancel refunds the full hold to the owning user.
func (s *WithdrawalService) Cancel(ctx context.Context, code, userID string) (*models.WithdrawalRequest, error) {
	if err := codes.Validate(code, s.cfg.Codes.WithdrawalPrefix); err != nil {
		return nil, err
	}

	req, err := s.reader.GetByCode(ctx, code)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if req == nil {
		return nil, errs.NotFound("Withdrawal code not found")
	}
	if req.UserID != userID {
		return nil, errs.NotAuthorized("Only the requesting user can cancel")
	}
	if req.Status != models.StatusPending {
		return nil, errs.AlreadyProcessed("Withdrawal code already processed")
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	cancelled, err := s.writer.UpdateStatus(ctx, code, models.StatusCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.AlreadyProcessed("Withdrawal code already processed")
		}
		return nil, errs.Internal(err)
	}

	hold := cancelled.Amount + cancelled.TotalFees
	if _, err := s.ledger.CreditFiat(ctx, cancelled.UserID, cancelled.Currency, hold); err != nil {
		return nil, errs.Internal(err)
	}

	logger.Log.Infow("withdrawal cancelled", "code", code, "refunded", hold)

	return cancelled, nil
}

func (s *WithdrawalService) expireAndRefund(ctx context.Context, req *models.WithdrawalRequest) error {
	expired, err := s.writer.UpdateStatus(ctx, req.Code, models.StatusExpired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Another path already finalized it; nothing held to refund.
			return nil
		}
		return errs.Internal(err)
	}

	hold := expired.Amount + expired.TotalFees
	if _, err := s.ledger.CreditFiat(ctx, expired.UserID, expired.Currency, hold); err != nil {
		// Put the request back so the sweeper retries the refund.
		if reopenErr := s.writer.Reopen(ctx, req.Code); reopenErr != nil {
			logger.Log.Errorw("failed to reopen withdrawal after refund failure",
				"code", req.Code, "error", reopenErr)
		}
		return errs.Internal(err)
	}

	logger.Log.Infow("withdrawal expired", "code", req.Code, "refunded", hold)
	return nil
}
