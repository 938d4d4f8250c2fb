package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type depositMocks struct {
	writer *MockDepositRequestWriter
	reader *MockDepositRequestReader
	ledger *MockLedgerWriter
	txns   *MockTransactionWriter
	pins   *MockPinVerifier
	fraud  *MockFraudChecker
	agents *MockAgentBalanceAccruer
	seq    *MockSequencer
}

func newDepositService(t *testing.T) (*DepositService, depositMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := depositMocks{
		writer: NewMockDepositRequestWriter(ctrl),
		reader: NewMockDepositRequestReader(ctrl),
		ledger: NewMockLedgerWriter(ctrl),
		txns:   NewMockTransactionWriter(ctrl),
		pins:   NewMockPinVerifier(ctrl),
		fraud:  NewMockFraudChecker(ctrl),
		agents: NewMockAgentBalanceAccruer(ctrl),
		seq:    NewMockSequencer(ctrl),
	}
	svc := NewDepositService(
		m.writer, m.reader, m.ledger, m.txns, m.pins, m.fraud, m.agents, m.seq,
		NewUserLocks(), NewTransactionPublisher(nil), config.Default(),
	)
	return svc, m
}

func TestDepositCreateRequest(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "user-1", "1234").Return(nil)
	m.fraud.EXPECT().Assess(ctx, "user-1", int64(100_000), "UGX", models.TxDepositFiat).Return(models.RiskVerdict{}, nil)
	m.seq.EXPECT().Next(ctx).Return(uint64(42), nil)

	var saved *models.DepositRequest
	m.writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req *models.DepositRequest) error {
		saved = req
		return nil
	})

	req, err := svc.CreateRequest(ctx, "user-1", "agent1", 100_000, "UGX", "1234")
	require.NoError(t, err)
	require.Same(t, saved, req)

	// 10% agent commission, 10% platform cut of that, 50 bps operation fee.
	assert.Equal(t, int64(10_000), req.AgentCommission)
	assert.Equal(t, int64(9_000), req.AgentKeeps)
	assert.Equal(t, int64(1_500), req.PlatformRevenue)
	assert.Equal(t, models.StatusPending, req.Status)
	assert.Regexp(t, `^DEP-`, req.Code)
	assert.Equal(t, req.CreatedAt.Add(time.Hour), req.ExpiresAt)
}

func TestDepositCreateRequest_BelowMinimum(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "user-1", "1234").Return(nil)

	_, err := svc.CreateRequest(ctx, "user-1", "agent1", 5_000, "UGX", "1234")
	assert.True(t, errs.IsKind(err, errs.KindLimitViolation))
}

func TestDepositCreateRequest_AboveMaximum(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "user-1", "1234").Return(nil)

	_, err := svc.CreateRequest(ctx, "user-1", "agent1", 2_000_000, "KES", "1234")
	assert.True(t, errs.IsKind(err, errs.KindLimitViolation))
}

func pendingDeposit(now time.Time) *models.DepositRequest {
	return &models.DepositRequest{
		ID:              "req-1",
		UserID:          "user-1",
		AgentID:         "agent1",
		Amount:          100_000,
		Currency:        "UGX",
		AgentCommission: 10_000,
		AgentKeeps:      9_000,
		PlatformRevenue: 1_500,
		Code:            "DEP-agent1-42-1700000000000",
		Status:          models.StatusPending,
		CreatedAt:       now.Add(-time.Minute),
		ExpiresAt:       now.Add(59 * time.Minute),
	}
}

func TestDepositConfirm(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingDeposit(now)

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	confirmed := *req
	confirmed.Status = models.StatusConfirmed
	m.writer.EXPECT().Confirm(ctx, req.Code).Return(&confirmed, nil)

	// The user receives the amount net of the agent's commission.
	m.ledger.EXPECT().CreditFiat(ctx, "user-1", "UGX", int64(90_000)).Return(int64(90_000), nil)
	m.agents.EXPECT().Accrue(ctx, "agent1", "UGX", int64(100_000), int64(0), int64(9_000)).Return(nil)
	m.txns.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
		assert.Equal(t, models.TxDepositFiat, txn.Type)
		assert.Equal(t, int64(90_000), txn.Amount)
		return nil
	})

	got, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
}

func TestDepositConfirm_WrongAgent(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingDeposit(now)

	m.pins.EXPECT().Verify(ctx, "agent2", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	_, err := svc.Confirm(ctx, req.Code, "agent2", "5678")
	assert.True(t, errs.IsKind(err, errs.KindNotAuthorized))
}

func TestDepositConfirm_AlreadyProcessed(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingDeposit(now)
	req.Status = models.StatusConfirmed

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	_, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindAlreadyProcessed))
}

func TestDepositConfirm_RacedConfirm(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingDeposit(now)

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)
	// The guarded flip lost the race: the row is no longer pending.
	m.writer.EXPECT().Confirm(ctx, req.Code).Return(nil, sql.ErrNoRows)

	_, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindAlreadyProcessed))
}

func TestDepositConfirm_Expired(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingDeposit(now)
	req.ExpiresAt = now.Add(-time.Minute)

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)
	// The flip runs on a detached context so it survives the 410 rollback.
	m.writer.EXPECT().MarkExpired(gomock.Not(ctx), req.Code).Return(nil)

	_, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindExpired))
}

func TestDepositConfirm_NotFound(t *testing.T) {
	svc, m := newDepositService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, "DEP-agent1-43-1700000000000").Return(nil, nil)

	_, err := svc.Confirm(ctx, "DEP-agent1-43-1700000000000", "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestDepositConfirm_MalformedCode(t *testing.T) {
	svc, _ := newDepositService(t)

	_, err := svc.Confirm(context.Background(), "WTH-agent1-42-1700000000000", "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindInvalidInput))
}
