package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type sweeperMocks struct {
	withdrawals       *MockWithdrawalRequestWriter
	expiredWithdrawal *MockExpiredWithdrawalLister
	escrows           *MockEscrowWriter
	expiredEscrow     *MockExpiredEscrowLister
	ledger            *MockLedgerWriter
}

func newSweeper(t *testing.T) (*Sweeper, sweeperMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := sweeperMocks{
		withdrawals:       NewMockWithdrawalRequestWriter(ctrl),
		expiredWithdrawal: NewMockExpiredWithdrawalLister(ctrl),
		escrows:           NewMockEscrowWriter(ctrl),
		expiredEscrow:     NewMockExpiredEscrowLister(ctrl),
		ledger:            NewMockLedgerWriter(ctrl),
	}
	s := NewSweeper(m.withdrawals, m.expiredWithdrawal, m.escrows, m.expiredEscrow, m.ledger, NewUserLocks())
	return s, m
}

func TestSweepExpired(t *testing.T) {
	s, m := newSweeper(t)
	ctx := context.Background()

	withdrawal := models.WithdrawalRequest{
		Code: "WTH-agent1-1-1700000000000", UserID: "user1",
		Amount: 100_000, TotalFees: 10_500, Currency: "UGX",
		Status: models.StatusPending,
	}
	escrow := models.Escrow{
		Code: "ESC-user2-2-1700000000000", UserID: "user2",
		Asset: models.AssetBTC, Amount: 500_000,
		Status: models.StatusPending,
	}

	m.expiredWithdrawal.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return([]models.WithdrawalRequest{withdrawal}, nil)
	expired := withdrawal
	expired.Status = models.StatusExpired
	m.withdrawals.EXPECT().UpdateStatus(ctx, withdrawal.Code, models.StatusExpired).Return(&expired, nil)
	m.ledger.EXPECT().CreditFiat(ctx, "user1", "UGX", int64(110_500)).Return(int64(110_500), nil)

	m.expiredEscrow.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return([]models.Escrow{escrow}, nil)
	expiredEscrow := escrow
	expiredEscrow.Status = models.StatusExpired
	m.escrows.EXPECT().UpdateStatus(ctx, escrow.Code, models.StatusExpired).Return(&expiredEscrow, nil)
	m.ledger.EXPECT().CreditCrypto(ctx, "user2", models.AssetBTC, int64(500_000)).Return(int64(500_000), nil)

	summary, err := s.SweepExpired(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Refunded)
	assert.Equal(t, int64(110_500), summary.RefundedPerAsset["UGX"])
	assert.Equal(t, int64(500_000), summary.RefundedPerAsset["BTC"])
}

func TestSweepExpired_SkipsAlreadyFinalized(t *testing.T) {
	s, m := newSweeper(t)
	ctx := context.Background()

	withdrawal := models.WithdrawalRequest{
		Code: "WTH-agent1-1-1700000000000", UserID: "user1",
		Amount: 100_000, TotalFees: 10_500, Currency: "UGX",
	}

	m.expiredWithdrawal.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return([]models.WithdrawalRequest{withdrawal}, nil)
	// Another path finalized the request between the list and the flip.
	m.withdrawals.EXPECT().UpdateStatus(ctx, withdrawal.Code, models.StatusExpired).Return(nil, sql.ErrNoRows)
	m.expiredEscrow.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return(nil, nil)

	summary, err := s.SweepExpired(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Refunded)
	assert.Empty(t, summary.RefundedPerAsset)
}

func TestSweepExpired_RefundFailureReopens(t *testing.T) {
	s, m := newSweeper(t)
	ctx := context.Background()

	withdrawal := models.WithdrawalRequest{
		Code: "WTH-agent1-1-1700000000000", UserID: "user1",
		Amount: 100_000, TotalFees: 10_500, Currency: "UGX",
		Status: models.StatusPending,
	}

	m.expiredWithdrawal.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return([]models.WithdrawalRequest{withdrawal}, nil)
	expired := withdrawal
	expired.Status = models.StatusExpired
	m.withdrawals.EXPECT().UpdateStatus(ctx, withdrawal.Code, models.StatusExpired).Return(&expired, nil)
	m.ledger.EXPECT().CreditFiat(ctx, "user1", "UGX", int64(110_500)).Return(int64(0), assert.AnError)
	// The failed refund puts the row back to pending; otherwise the 110,500
	// hold would be stranded, since expired rows are never listed again.
	m.withdrawals.EXPECT().Reopen(ctx, withdrawal.Code).Return(nil)

	summary, err := s.SweepExpired(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, summary.Refunded)
}

func TestSweepExpired_NothingToDo(t *testing.T) {
	s, m := newSweeper(t)
	ctx := context.Background()

	m.expiredWithdrawal.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return(nil, nil)
	m.expiredEscrow.EXPECT().ListExpiredPending(ctx, sweepBatchSize).Return(nil, nil)

	summary, err := s.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.Processed)
}

func TestSweeperRun_StopsOnCancel(t *testing.T) {
	s, m := newSweeper(t)

	m.expiredWithdrawal.EXPECT().ListExpiredPending(gomock.Any(), sweepBatchSize).Return(nil, nil).AnyTimes()
	m.expiredEscrow.EXPECT().ListExpiredPending(gomock.Any(), sweepBatchSize).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
