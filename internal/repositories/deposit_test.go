package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestDepositRequestSave(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	now := time.Now()
	req := &models.DepositRequest{
		ID:              "dep-1",
		UserID:          "user-1",
		AgentID:         "agent-1",
		Amount:          100_000,
		Currency:        "KES",
		AgentCommission: 10_000,
		AgentKeeps:      9_000,
		PlatformRevenue: 1_500,
		Code:            "DEP-agent-1-1-1714070400000",
		Status:          models.StatusPending,
		CreatedAt:       now,
		ExpiresAt:       now.Add(time.Hour),
	}

	mock.ExpectExec(`INSERT INTO deposit_requests`).
		WithArgs(req.ID, req.UserID, req.AgentID, req.Amount, req.Currency, req.AgentCommission,
			req.AgentKeeps, req.PlatformRevenue, req.Code, req.Status, req.CreatedAt, req.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	writer := NewDepositRequestWriterRepository(db, nil)
	err := writer.Save(context.Background(), req)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRequestConfirm(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "agent_id", "amount", "currency", "agent_commission",
		"agent_keeps", "platform_revenue", "code", "status", "created_at", "expires_at", "confirmed_at",
	}).AddRow("dep-1", "user-1", "agent-1", int64(100_000), "KES", int64(10_000),
		int64(9_000), int64(1_500), "DEP-agent-1-1-1714070400000", "confirmed", now, now.Add(time.Hour), now)

	mock.ExpectQuery(`UPDATE deposit_requests SET status = 'confirmed'`).
		WithArgs("DEP-agent-1-1-1714070400000").
		WillReturnRows(rows)

	writer := NewDepositRequestWriterRepository(db, nil)
	req, err := writer.Confirm(context.Background(), "DEP-agent-1-1-1714070400000")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, req.Status)
	assert.Equal(t, int64(100_000), req.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRequestConfirm_AlreadyProcessed(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// Guarded UPDATE matches nothing when the request is no longer pending.
	mock.ExpectQuery(`UPDATE deposit_requests SET status = 'confirmed'`).
		WithArgs("DEP-agent-1-1-1714070400000").
		WillReturnError(sql.ErrNoRows)

	writer := NewDepositRequestWriterRepository(db, nil)
	_, err := writer.Confirm(context.Background(), "DEP-agent-1-1-1714070400000")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRequestGetByCode_NotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM deposit_requests`).
		WithArgs("DEP-missing-0-0").
		WillReturnError(sql.ErrNoRows)

	reader := NewDepositRequestReaderRepository(db)
	req, err := reader.GetByCode(context.Background(), "DEP-missing-0-0")
	assert.NoError(t, err)
	assert.Nil(t, req)
	assert.NoError(t, mock.ExpectationsWereMet())
}
