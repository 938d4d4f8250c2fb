package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type transferMocks struct {
	ledger   *MockLedgerWriter
	balances *MockLedgerReader
	txns     *MockTransactionWriter
	pins     *MockPinVerifier
	fraud    *MockFraudChecker
	users    *MockUserReader
}

func newTransferService(t *testing.T) (*TransferService, transferMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := transferMocks{
		ledger:   NewMockLedgerWriter(ctrl),
		balances: NewMockLedgerReader(ctrl),
		txns:     NewMockTransactionWriter(ctrl),
		pins:     NewMockPinVerifier(ctrl),
		fraud:    NewMockFraudChecker(ctrl),
		users:    NewMockUserReader(ctrl),
	}
	svc := NewTransferService(
		m.ledger, m.balances, m.txns, m.pins, m.fraud, m.users,
		NewUserLocks(), NewTransactionPublisher(nil), config.Default().Fees,
	)
	return svc, m
}

func TestTransferFiat_Success(t *testing.T) {
	svc, m := newTransferService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "alice", "1234").Return(nil)
	m.users.EXPECT().GetByID(ctx, "bob").Return(&models.User{ID: "bob"}, nil)
	m.fraud.EXPECT().Assess(ctx, "alice", int64(100_000), "UGX", models.TxTransferFiat).Return(models.RiskVerdict{}, nil)

	// 50 bps fee on 100000 is 500; the sender pays 100500.
	m.ledger.EXPECT().DebitFiat(ctx, "alice", "UGX", int64(100_500)).Return(int64(399_500), nil)
	m.ledger.EXPECT().CreditFiat(ctx, "bob", "UGX", int64(100_000)).Return(int64(100_000), nil)
	m.txns.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
		assert.Equal(t, models.TxTransferFiat, txn.Type)
		assert.Equal(t, int64(100_000), txn.Amount)
		return nil
	})

	result, err := svc.TransferFiat(ctx, "alice", "bob", 100_000, "UGX", "1234")
	require.NoError(t, err)
	assert.Equal(t, int64(500), result.Fee)
	assert.Equal(t, int64(399_500), result.SenderNewBalance)
	assert.Equal(t, int64(100_000), result.RecipientNewBalance)
}

func TestTransferFiat_SelfTransfer(t *testing.T) {
	svc, _ := newTransferService(t)

	_, err := svc.TransferFiat(context.Background(), "alice", "alice", 100_000, "UGX", "1234")
	assert.True(t, errs.IsKind(err, errs.KindInvalidInput))
}

func TestTransferFiat_NonPositiveAmount(t *testing.T) {
	svc, _ := newTransferService(t)

	_, err := svc.TransferFiat(context.Background(), "alice", "bob", 0, "UGX", "1234")
	assert.True(t, errs.IsKind(err, errs.KindInvalidInput))
}

func TestTransferFiat_WrongPin(t *testing.T) {
	svc, m := newTransferService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "alice", "9999").Return(errs.InvalidPin())

	_, err := svc.TransferFiat(ctx, "alice", "bob", 100_000, "UGX", "9999")
	assert.True(t, errs.IsKind(err, errs.KindInvalidPin))
}

func TestTransferFiat_RecipientNotFound(t *testing.T) {
	svc, m := newTransferService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "alice", "1234").Return(nil)
	m.users.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

	_, err := svc.TransferFiat(ctx, "alice", "ghost", 100_000, "UGX", "1234")
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestTransferFiat_Blocked(t *testing.T) {
	svc, m := newTransferService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "alice", "1234").Return(nil)
	m.users.EXPECT().GetByID(ctx, "bob").Return(&models.User{ID: "bob"}, nil)
	m.fraud.EXPECT().Assess(ctx, "alice", int64(15_000_000), "UGX", models.TxTransferFiat).Return(models.RiskVerdict{
		RiskScore:   100,
		ShouldBlock: true,
		Warnings:    []string{"Amount 15000000 exceeds maximum 10000000 for UGX"},
	}, nil)

	_, err := svc.TransferFiat(ctx, "alice", "bob", 15_000_000, "UGX", "1234")
	require.True(t, errs.IsKind(err, errs.KindBlocked))

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.NotEmpty(t, e.Warnings)
}

func TestTransferFiat_InsufficientBalance(t *testing.T) {
	svc, m := newTransferService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "alice", "1234").Return(nil)
	m.users.EXPECT().GetByID(ctx, "bob").Return(&models.User{ID: "bob"}, nil)
	m.fraud.EXPECT().Assess(ctx, "alice", int64(100_000), "UGX", models.TxTransferFiat).Return(models.RiskVerdict{}, nil)
	m.ledger.EXPECT().DebitFiat(ctx, "alice", "UGX", int64(100_500)).Return(int64(0), sql.ErrNoRows)
	m.balances.EXPECT().GetFiatBalance(ctx, "alice", "UGX").Return(int64(50_000), nil)

	_, err := svc.TransferFiat(ctx, "alice", "bob", 100_000, "UGX", "1234")
	require.True(t, errs.IsKind(err, errs.KindInsufficientBalance))
	assert.Contains(t, err.Error(), "Have: 50000")
	assert.Contains(t, err.Error(), "Need: 100500")
}

func TestTransferFiat_CreditFailureReversesDebit(t *testing.T) {
	svc, m := newTransferService(t)
	ctx := context.Background()

	m.pins.EXPECT().Verify(ctx, "alice", "1234").Return(nil)
	m.users.EXPECT().GetByID(ctx, "bob").Return(&models.User{ID: "bob"}, nil)
	m.fraud.EXPECT().Assess(ctx, "alice", int64(100_000), "UGX", models.TxTransferFiat).Return(models.RiskVerdict{}, nil)
	m.ledger.EXPECT().DebitFiat(ctx, "alice", "UGX", int64(100_500)).Return(int64(399_500), nil)
	m.ledger.EXPECT().CreditFiat(ctx, "bob", "UGX", int64(100_000)).Return(int64(0), assert.AnError)
	m.ledger.EXPECT().CreditFiat(ctx, "alice", "UGX", int64(100_500)).Return(int64(500_000), nil)

	_, err := svc.TransferFiat(ctx, "alice", "bob", 100_000, "UGX", "1234")
	assert.True(t, errs.IsKind(err, errs.KindInternal))
}
