package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

func newPinService(t *testing.T) (*PinService, *MockPinReader, *MockPinWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := NewMockPinReader(ctrl)
	writer := NewMockPinWriter(ctrl)
	svc := NewPinService(reader, writer, config.Default().Pin)
	return svc, reader, writer
}

func TestHashPin_Deterministic(t *testing.T) {
	h1, err := HashPin("1234", "user-1")
	require.NoError(t, err)
	h2, err := HashPin("1234", "user-1")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	// The same pin for a different user hashes differently.
	h3, err := HashPin("1234", "user-2")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestSet_RejectsBadFormat(t *testing.T) {
	svc, _, _ := newPinService(t)

	for _, pin := range []string{"123", "1234567", "12a4", ""} {
		err := svc.Set(context.Background(), "user-1", pin)
		assert.True(t, errs.IsKind(err, errs.KindInvalidInput), "pin %q", pin)
	}
}

func TestSet_StoresHash(t *testing.T) {
	svc, _, writer := newPinService(t)

	want, err := HashPin("1234", "user-1")
	require.NoError(t, err)

	writer.EXPECT().Save(gomock.Any(), "user-1", want).Return(nil)

	require.NoError(t, svc.Set(context.Background(), "user-1", "1234"))
}

func TestVerify_Success(t *testing.T) {
	svc, reader, _ := newPinService(t)

	hash, err := HashPin("1234", "user-1")
	require.NoError(t, err)

	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:  "user-1",
		PinHash: hash,
	}, nil)

	require.NoError(t, svc.Verify(context.Background(), "user-1", "1234"))
}

func TestVerify_SuccessResetsFailures(t *testing.T) {
	svc, reader, writer := newPinService(t)

	hash, err := HashPin("1234", "user-1")
	require.NoError(t, err)

	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:         "user-1",
		PinHash:        hash,
		FailedAttempts: 2,
	}, nil)
	writer.EXPECT().ResetFailures(gomock.Any(), "user-1").Return(nil)

	require.NoError(t, svc.Verify(context.Background(), "user-1", "1234"))
}

func TestVerify_WrongPinRecordsFailure(t *testing.T) {
	svc, reader, writer := newPinService(t)

	hash, err := HashPin("1234", "user-1")
	require.NoError(t, err)

	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:  "user-1",
		PinHash: hash,
	}, nil)
	writer.EXPECT().RecordFailure(gomock.Any(), "user-1").Return(1, nil)

	err = svc.Verify(context.Background(), "user-1", "9999")
	assert.True(t, errs.IsKind(err, errs.KindInvalidPin))
}

func TestVerify_ThirdFailureLocks(t *testing.T) {
	svc, reader, writer := newPinService(t)

	now := time.Now()
	svc.now = func() time.Time { return now }

	hash, err := HashPin("1234", "user-1")
	require.NoError(t, err)

	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:         "user-1",
		PinHash:        hash,
		FailedAttempts: 2,
	}, nil)
	writer.EXPECT().RecordFailure(gomock.Any(), "user-1").Return(3, nil)
	writer.EXPECT().Lock(gomock.Any(), "user-1", now.Add(30*time.Minute)).Return(nil)

	err = svc.Verify(context.Background(), "user-1", "9999")
	assert.True(t, errs.IsKind(err, errs.KindInvalidPin))
}

func TestVerify_LockedFailsBeforeHashing(t *testing.T) {
	svc, reader, _ := newPinService(t)

	now := time.Now()
	svc.now = func() time.Time { return now }

	until := now.Add(10 * time.Minute)
	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:         "user-1",
		PinHash:        "irrelevant",
		FailedAttempts: 3,
		LockedUntil:    &until,
	}, nil)

	err := svc.Verify(context.Background(), "user-1", "1234")
	require.True(t, errs.IsKind(err, errs.KindTooManyAttempts))

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 10*time.Minute, e.RetryAfter)
}

func TestVerify_ExpiredLockAllowsAttempt(t *testing.T) {
	svc, reader, writer := newPinService(t)

	now := time.Now()
	svc.now = func() time.Time { return now }

	hash, err := HashPin("1234", "user-1")
	require.NoError(t, err)

	until := now.Add(-time.Minute)
	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:         "user-1",
		PinHash:        hash,
		FailedAttempts: 3,
		LockedUntil:    &until,
	}, nil)
	writer.EXPECT().ResetFailures(gomock.Any(), "user-1").Return(nil)

	require.NoError(t, svc.Verify(context.Background(), "user-1", "1234"))
}

func TestVerify_NoPinSet(t *testing.T) {
	svc, reader, _ := newPinService(t)

	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, nil)

	err := svc.Verify(context.Background(), "user-1", "1234")
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestChange(t *testing.T) {
	svc, reader, writer := newPinService(t)

	oldHash, err := HashPin("1234", "user-1")
	require.NoError(t, err)
	newHash, err := HashPin("5678", "user-1")
	require.NoError(t, err)

	reader.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&models.PinRecord{
		UserID:  "user-1",
		PinHash: oldHash,
	}, nil)
	writer.EXPECT().Save(gomock.Any(), "user-1", newHash).Return(nil)

	require.NoError(t, svc.Change(context.Background(), "user-1", "1234", "5678"))
}
