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

type withdrawalMocks struct {
	writer   *MockWithdrawalRequestWriter
	reader   *MockWithdrawalRequestReader
	ledger   *MockLedgerWriter
	balances *MockLedgerReader
	txns     *MockTransactionWriter
	pins     *MockPinVerifier
	fraud    *MockFraudChecker
	agents   *MockAgentBalanceAccruer
	seq      *MockSequencer
}

func newWithdrawalService(t *testing.T) (*WithdrawalService, withdrawalMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := withdrawalMocks{
		writer:   NewMockWithdrawalRequestWriter(ctrl),
		reader:   NewMockWithdrawalRequestReader(ctrl),
		ledger:   NewMockLedgerWriter(ctrl),
		balances: NewMockLedgerReader(ctrl),
		txns:     NewMockTransactionWriter(ctrl),
		pins:     NewMockPinVerifier(ctrl),
		fraud:    NewMockFraudChecker(ctrl),
		agents:   NewMockAgentBalanceAccruer(ctrl),
		seq:      NewMockSequencer(ctrl),
	}
	svc := NewWithdrawalService(
		m.writer, m.reader, m.ledger, m.balances, m.txns, m.pins, m.fraud,
		m.agents, m.seq, NewUserLocks(), NewTransactionPublisher(nil), config.Default(),
	)
	return svc, m
}

func TestWithdrawalCreateRequest_HoldsAmountPlusFees(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "user-1", "1234").Return(nil)
	m.fraud.EXPECT().Assess(ctx, "user-1", int64(100_000), "UGX", models.TxWithdrawFiat).Return(models.RiskVerdict{}, nil)
	m.seq.EXPECT().Next(ctx).Return(uint64(7), nil)

	// Hold is amount plus the 10% agent fee plus the 50 bps platform fee.
	m.ledger.EXPECT().DebitFiat(ctx, "user-1", "UGX", int64(110_500)).Return(int64(389_500), nil)
	m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	req, err := svc.CreateRequest(ctx, "user-1", "agent1", 100_000, "UGX", "1234")
	require.NoError(t, err)

	assert.Equal(t, int64(10_000), req.AgentFee)
	assert.Equal(t, int64(500), req.PlatformFee)
	assert.Equal(t, int64(10_500), req.TotalFees)
	assert.Equal(t, int64(9_000), req.AgentKeeps)
	assert.Equal(t, int64(1_500), req.PlatformRevenue)
	assert.Equal(t, models.StatusPending, req.Status)
	assert.Regexp(t, `^WTH-`, req.Code)
}

func TestWithdrawalCreateRequest_InsufficientBalance(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "user-1", "1234").Return(nil)
	m.fraud.EXPECT().Assess(ctx, "user-1", int64(100_000), "UGX", models.TxWithdrawFiat).Return(models.RiskVerdict{}, nil)
	m.seq.EXPECT().Next(ctx).Return(uint64(7), nil)
	m.ledger.EXPECT().DebitFiat(ctx, "user-1", "UGX", int64(110_500)).Return(int64(0), sql.ErrNoRows)
	m.balances.EXPECT().GetFiatBalance(ctx, "user-1", "UGX").Return(int64(105_000), nil)

	_, err := svc.CreateRequest(ctx, "user-1", "agent1", 100_000, "UGX", "1234")
	require.True(t, errs.IsKind(err, errs.KindInsufficientBalance))
	assert.Contains(t, err.Error(), "Need: 110500")
}

func TestWithdrawalCreateRequest_SaveFailureRefundsHold(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "user-1", "1234").Return(nil)
	m.fraud.EXPECT().Assess(ctx, "user-1", int64(100_000), "UGX", models.TxWithdrawFiat).Return(models.RiskVerdict{}, nil)
	m.seq.EXPECT().Next(ctx).Return(uint64(7), nil)
	m.ledger.EXPECT().DebitFiat(ctx, "user-1", "UGX", int64(110_500)).Return(int64(389_500), nil)
	m.writer.EXPECT().Save(ctx, gomock.Any()).Return(assert.AnError)
	m.ledger.EXPECT().CreditFiat(ctx, "user-1", "UGX", int64(110_500)).Return(int64(500_000), nil)

	_, err := svc.CreateRequest(ctx, "user-1", "agent1", 100_000, "UGX", "1234")
	assert.True(t, errs.IsKind(err, errs.KindInternal))
}

func pendingWithdrawal(now time.Time) *models.WithdrawalRequest {
	return &models.WithdrawalRequest{
		ID:              "req-1",
		UserID:          "user-1",
		AgentID:         "agent1",
		Amount:          100_000,
		Currency:        "UGX",
		AgentFee:        10_000,
		PlatformFee:     500,
		TotalFees:       10_500,
		AgentKeeps:      9_000,
		PlatformRevenue: 1_500,
		Code:            "WTH-agent1-7-1700000000000",
		Status:          models.StatusPending,
		CreatedAt:       now.Add(-time.Minute),
		ExpiresAt:       now.Add(59 * time.Minute),
	}
}

func TestWithdrawalConfirm(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	confirmed := *req
	confirmed.Status = models.StatusConfirmed
	m.writer.EXPECT().UpdateStatus(ctx, req.Code, models.StatusConfirmed).Return(&confirmed, nil)
	m.agents.EXPECT().Accrue(ctx, "agent1", "UGX", int64(0), int64(100_000), int64(9_000)).Return(nil)
	m.txns.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
		assert.Equal(t, models.TxWithdrawFiat, txn.Type)
		assert.Equal(t, int64(100_000), txn.Amount)
		return nil
	})

	got, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
}

func TestWithdrawalConfirm_ExpiredRefundsHold(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)
	req.ExpiresAt = now.Add(-time.Minute)

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	// The flip and refund run on a detached context so they survive the
	// 410 rollback.
	expired := *req
	expired.Status = models.StatusExpired
	m.writer.EXPECT().UpdateStatus(gomock.Not(ctx), req.Code, models.StatusExpired).Return(&expired, nil)
	m.ledger.EXPECT().CreditFiat(gomock.Not(ctx), "user-1", "UGX", int64(110_500)).Return(int64(500_000), nil)

	_, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindExpired))
}

func TestWithdrawalConfirm_ExpiredRefundFailureReopens(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)
	req.ExpiresAt = now.Add(-time.Minute)

	m.pins.EXPECT().Verify(ctx, "agent1", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	expired := *req
	expired.Status = models.StatusExpired
	m.writer.EXPECT().UpdateStatus(gomock.Any(), req.Code, models.StatusExpired).Return(&expired, nil)
	m.ledger.EXPECT().CreditFiat(gomock.Any(), "user-1", "UGX", int64(110_500)).Return(int64(0), assert.AnError)
	// The failed refund puts the row back to pending so the sweeper retries;
	// left expired it would never be listed again.
	m.writer.EXPECT().Reopen(gomock.Any(), req.Code).Return(nil)

	_, err := svc.Confirm(ctx, req.Code, "agent1", "5678")
	assert.True(t, errs.IsKind(err, errs.KindInternal))
}

func TestWithdrawalConfirm_WrongAgent(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)

	m.pins.EXPECT().Verify(ctx, "agent2", "5678").Return(nil)
	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	_, err := svc.Confirm(ctx, req.Code, "agent2", "5678")
	assert.True(t, errs.IsKind(err, errs.KindNotAuthorized))
}

func TestWithdrawalCancel_RefundsFullHold(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)

	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	cancelled := *req
	cancelled.Status = models.StatusCancelled
	m.writer.EXPECT().UpdateStatus(ctx, req.Code, models.StatusCancelled).Return(&cancelled, nil)
	m.ledger.EXPECT().CreditFiat(ctx, "user-1", "UGX", int64(110_500)).Return(int64(500_000), nil)

	got, err := svc.Cancel(ctx, req.Code, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)
}

func TestWithdrawalCancel_OnlyOwner(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)

	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	_, err := svc.Cancel(ctx, req.Code, "user-2")
	assert.True(t, errs.IsKind(err, errs.KindNotAuthorized))
}

func TestWithdrawalCancel_AlreadyProcessed(t *testing.T) {
	svc, m := newWithdrawalService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	req := pendingWithdrawal(now)
	req.Status = models.StatusConfirmed

	m.reader.EXPECT().GetByCode(ctx, req.Code).Return(req, nil)

	_, err := svc.Cancel(ctx, req.Code, "user-1")
	assert.True(t, errs.IsKind(err, errs.KindAlreadyProcessed))
}
