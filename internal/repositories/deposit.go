package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type DepositRequestWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDepositRequestWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DepositRequestWriterRepository {
	return &DepositRequestWriterRepository{db: db, txGetter: txGetter}
}

func (r *DepositRequestWriterRepository) Save(ctx context.Context, req *models.DepositRequest) error {
	query := `
		INSERT INTO deposit_requests (id, user_id, agent_id, amount, currency, agent_commission,
		                              agent_keeps, platform_revenue, code, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	args := []any{
		req.ID, req.UserID, req.AgentID, req.Amount, req.Currency, req.AgentCommission,
		req.AgentKeeps, req.PlatformRevenue, req.Code, req.Status, req.CreatedAt, req.ExpiresAt,
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

// Confirm flips a pending request to confirmed in one guarded UPDATE. Returns
// sql.ErrNoRows when the request is not pending anymore, which makes a
// double confirm fail cleanly.
func (r *DepositRequestWriterRepository) Confirm(ctx context.Context, code string) (*models.DepositRequest, error) {
	query := `
		UPDATE deposit_requests
		SET status = 'confirmed', confirmed_at = NOW()
		WHERE code = $1 AND status = 'pending'
		RETURNING id, user_id, agent_id, amount, currency, agent_commission,
		          agent_keeps, platform_revenue, code, status, created_at, expires_at, confirmed_at
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var req models.DepositRequest
	err := sqlx.GetContext(ctx, executor, &req, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &req, nil
}

// MarkExpired flips a pending request past its deadline to expired.
func (r *DepositRequestWriterRepository) MarkExpired(ctx context.Context, code string) error {
	query := `
		UPDATE deposit_requests
		SET status = 'expired'
		WHERE code = $1 AND status = 'pending'
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)
	_, err := executor.ExecContext(ctx, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	return err
}

type DepositRequestReaderRepository struct {
	db *sqlx.DB
}

func NewDepositRequestReaderRepository(db *sqlx.DB) *DepositRequestReaderRepository {
	return &DepositRequestReaderRepository{db: db}
}

func (r *DepositRequestReaderRepository) GetByCode(ctx context.Context, code string) (*models.DepositRequest, error) {
	const query = `
		SELECT id, user_id, agent_id, amount, currency, agent_commission,
		       agent_keeps, platform_revenue, code, status, created_at, expires_at, confirmed_at
		FROM deposit_requests
		WHERE code = $1
	`

	var req models.DepositRequest
	err := r.db.GetContext(ctx, &req, query, code)

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
	return &req, nil
}
