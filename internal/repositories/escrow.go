package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type EscrowWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEscrowWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EscrowWriterRepository {
	return &EscrowWriterRepository{db: db, txGetter: txGetter}
}

func (r *EscrowWriterRepository) Save(ctx context.Context, escrow *models.Escrow) error {
	query := `
		INSERT INTO escrows (code, user_id, agent_id, asset, amount, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{
		escrow.Code, escrow.UserID, escrow.AgentID, escrow.Asset, escrow.Amount,
		escrow.Status, escrow.CreatedAt, escrow.ExpiresAt,
	}

	executor := resolveExecutor(ctx, r.db, r.txGetter)
	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateStatus moves a pending escrow to confirmed, cancelled or expired in
// one guarded UPDATE. sql.ErrNoRows means the escrow already left the
// pending state.
func (r *EscrowWriterRepository) UpdateStatus(ctx context.Context, code string, status models.RequestStatus) (*models.Escrow, error) {
	query := `
		UPDATE escrows
		SET status = $2, claimed_at = CASE WHEN $2 = 'confirmed' THEN NOW() ELSE claimed_at END
		WHERE code = $1 AND status = 'pending'
		RETURNING code, user_id, agent_id, asset, amount, status, created_at, expires_at, claimed_at
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var escrow models.Escrow
	err := sqlx.GetContext(ctx, executor, &escrow, query, code, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code, status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &escrow, nil
}

// Reopen puts an expired escrow back to pending after a failed refund so the
// next sweep pass retries it.
func (r *EscrowWriterRepository) Reopen(ctx context.Context, code string) error {
	query := `
		UPDATE escrows
		SET status = 'pending'
		WHERE code = $1 AND status = 'expired'
	`

	_, err := r.db.ExecContext(ctx, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	return err
}

type EscrowReaderRepository struct {
	db *sqlx.DB
}

func NewEscrowReaderRepository(db *sqlx.DB) *EscrowReaderRepository {
	return &EscrowReaderRepository{db: db}
}

func (r *EscrowReaderRepository) GetByCode(ctx context.Context, code string) (*models.Escrow, error) {
	const query = `
		SELECT code, user_id, agent_id, asset, amount, status, created_at, expires_at, claimed_at
		FROM escrows
		WHERE code = $1
	`

	var escrow models.Escrow
	err := r.db.GetContext(ctx, &escrow, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &escrow, nil
}

// ListExpiredPending returns pending escrows past their deadline for the
// sweeper.
func (r *EscrowReaderRepository) ListExpiredPending(ctx context.Context, limit int) ([]models.Escrow, error) {
	const query = `
		SELECT code, user_id, agent_id, asset, amount, status, created_at, expires_at, claimed_at
		FROM escrows
		WHERE status = 'pending' AND expires_at <= NOW()
		ORDER BY expires_at
		LIMIT $1
	`

	var escrows []models.Escrow
	err := r.db.SelectContext(ctx, &escrows, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(escrows),
		"error", err,
	)

	return escrows, err
}
