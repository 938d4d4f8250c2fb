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
	"github.com/AfriTokeni/afritokeni-core/internal/fees"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/middlewares"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// DepositRequestWriter mutates deposit requests.
type DepositRequestWriter interface {
	Save(ctx context.Context, req *models.DepositRequest) error
	Confirm(ctx context.Context, code string) (*models.DepositRequest, error)
	MarkExpired(ctx context.Context, code string) error
}

// DepositRequestReader looks up deposit requests.
type DepositRequestReader interface {
	GetByCode(ctx context.Context, code string) (*models.DepositRequest, error)
}

// Sequencer hands out code sequence numbers.
type Sequencer interface {
	Next(ctx context.Context) (uint64, error)
}

// AgentBalanceAccruer accrues agent totals and commission.
type AgentBalanceAccruer interface {
	Accrue(ctx context.Context, agentID, currency string, deposits, withdrawals, commission int64) error
}

// DepositService runs the agent-mediated cash-in flow. Creation issues a
// code and moves no funds; confirmation by the agent credits the user with
// the net amount and accrues the agent's commission.
type DepositService struct {
	writer    DepositRequestWriter
	reader    DepositRequestReader
	ledger    LedgerWriter
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

func NewDepositService(
	writer DepositRequestWriter,
	reader DepositRequestReader,
	ledger LedgerWriter,
	txns TransactionWriter,
	pins PinVerifier,
	fraud FraudChecker,
	agents AgentBalanceAccruer,
	seq Sequencer,
	locks *UserLocks,
	publisher *TransactionPublisher,
	cfg config.Config,
) *DepositService {
	return &DepositService{
		writer:    writer,
		reader:    reader,
		ledger:    ledger,
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

// CreateRequest issues a pending deposit code. No balance is mutated here.
func (s *DepositService) CreateRequest(ctx context.Context, userID, agentID string, amount int64, currency, pin string) (*models.DepositRequest, error) {
	if amount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}

	limits := s.cfg.LimitsFor(currency)
	if amount < limits.MinDeposit {
		return nil, errs.LimitViolation("Amount %d is below the minimum deposit of %d %s", amount, limits.MinDeposit, currency)
	}
	if amount > limits.MaxDeposit {
		return nil, errs.LimitViolation("Amount %d exceeds the maximum deposit of %d %s", amount, limits.MaxDeposit, currency)
	}

	verdict, err := s.fraud.Assess(ctx, userID, amount, currency, models.TxDepositFiat)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if verdict.ShouldBlock {
		return nil, errs.Blocked(verdict.Warnings)
	}

	breakdown, err := fees.CalculateDeposit(amount, s.cfg.Fees.Deposit)
	if err != nil {
		return nil, err
	}

	seq, err := s.seq.Next(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}

	now := s.now()
	req := &models.DepositRequest{
		ID:              uuid.New().String(),
		UserID:          userID,
		AgentID:         agentID,
		Amount:          amount,
		Currency:        currency,
		AgentCommission: breakdown.AgentCommission,
		AgentKeeps:      breakdown.AgentKeeps,
		PlatformRevenue: breakdown.TotalPlatformRevenue,
		Code:            codes.Generate(s.cfg.Codes.DepositPrefix, agentID, seq, now),
		Status:          models.StatusPending,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.cfg.Codes.CodeTTL),
	}

	if err := s.writer.Save(ctx, req); err != nil {
		return nil, errs.Internal(err)
	}

	logger.Log.Infow("deposit request created",
		"code", req.Code, "user_id", userID, "agent_id", agentID, "amount", amount, "currency", currency)

	return req, nil
}

// Confirm settles a pending deposit. Only the request's agent may confirm;
// re-confirmation fails because the status flip is guarded on Pending.
func (s *DepositService) Confirm(ctx context.Context, code, agentID, agentPin string) (*models.DepositRequest, error) {
	if err := codes.Validate(code, s.cfg.Codes.DepositPrefix); err != nil {
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
		return nil, errs.NotFound("Deposit code not found")
	}
	if req.AgentID != agentID {
		return nil, errs.NotAuthorized("Code belongs to a different agent")
	}
	if req.Status != models.StatusPending {
		if req.Status == models.StatusExpired {
			return nil, errs.Expired("Deposit code has expired")
		}
		return nil, errs.AlreadyProcessed("Deposit code already processed")
	}
	if s.now().After(req.ExpiresAt) {
		// The flip must outlive this request: it answers with an error
		// status, which rolls the request transaction back.
		if err := s.writer.MarkExpired(middlewares.WithoutTx(ctx), code); err != nil {
			return nil, errs.Internal(err)
		}
		return nil, errs.Expired("Deposit code has expired")
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	confirmed, err := s.writer.Confirm(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.AlreadyProcessed("Deposit code already processed")
		}
		return nil, errs.Internal(err)
	}

	net := confirmed.Amount - confirmed.AgentCommission
	if _, err := s.ledger.CreditFiat(ctx, confirmed.UserID, confirmed.Currency, net); err != nil {
		return nil, errs.Internal(err)
	}

	if err := s.agents.Accrue(ctx, confirmed.AgentID, confirmed.Currency, confirmed.Amount, 0, confirmed.AgentKeeps); err != nil {
		return nil, errs.Internal(err)
	}

	now := s.now()
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Type:        models.TxDepositFiat,
		FromUser:    &confirmed.AgentID,
		ToUser:      &confirmed.UserID,
		Amount:      net,
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
