package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type PinWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPinWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PinWriterRepository {
	return &PinWriterRepository{db: db, txGetter: txGetter}
}

// Save stores the hash and resets the failure state. Used for both initial
// setup and PIN change.
func (r *PinWriterRepository) Save(ctx context.Context, userID, pinHash string) error {
	query := `
		INSERT INTO pins (user_id, pin_hash, failed_attempts, locked_until, created_at, updated_at)
		VALUES ($1, $2, 0, NULL, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET pin_hash = EXCLUDED.pin_hash,
		    failed_attempts = 0,
		    locked_until = NULL,
		    updated_at = NOW()
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)
	_, err := executor.ExecContext(ctx, query, userID, pinHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// RecordFailure increments the consecutive-failure counter and returns the
// new count. The write goes to the pool, not the request transaction: a wrong
// PIN ends the request with an error status and a rollback, and the counter
// must survive that rollback.
func (r *PinWriterRepository) RecordFailure(ctx context.Context, userID string) (int, error) {
	query := `
		UPDATE pins
		SET failed_attempts = failed_attempts + 1, updated_at = NOW()
		WHERE user_id = $1
		RETURNING failed_attempts
	`

	var attempts int
	err := sqlx.GetContext(ctx, r.db, &attempts, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", attempts,
		"error", err,
	)

	return attempts, err
}

// ResetFailures clears the counter and any lockout after a successful verify.
func (r *PinWriterRepository) ResetFailures(ctx context.Context, userID string) error {
	query := `
		UPDATE pins
		SET failed_attempts = 0, locked_until = NULL, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// Lock sets the lockout deadline after too many failures. Like RecordFailure,
// the write bypasses the request transaction so the lockout stands after the
// failing request rolls back.
func (r *PinWriterRepository) Lock(ctx context.Context, userID string, until time.Time) error {
	query := `
		UPDATE pins
		SET locked_until = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, until)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, until},
		"error", err,
	)

	return err
}

type PinReaderRepository struct {
	db *sqlx.DB
}

func NewPinReaderRepository(db *sqlx.DB) *PinReaderRepository {
	return &PinReaderRepository{db: db}
}

func (r *PinReaderRepository) GetByUserID(ctx context.Context, userID string) (*models.PinRecord, error) {
	const query = `
		SELECT user_id, pin_hash, failed_attempts, locked_until, created_at, updated_at
		FROM pins
		WHERE user_id = $1
	`

	var record models.PinRecord
	err := r.db.GetContext(ctx, &record, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
