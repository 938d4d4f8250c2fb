package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type WithdrawalRequestWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWithdrawalRequestWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WithdrawalRequestWriterRepository {
	return &WithdrawalRequestWriterRepository{db: db, txGetter: txGetter}
}

func (r *WithdrawalRequestWriterRepository) Save(ctx context.Context, req *models.WithdrawalRequest) error {
	query := `
		INSERT INTO withdrawal_requests (id, user_id, agent_id, amount, currency, agent_fee, platform_fee,
		                                 total_fees, agent_keeps, platform_revenue, code, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	args := []any{
		req.ID, req.UserID, req.AgentID, req.Amount, req.Currency, req.AgentFee, req.PlatformFee,
		req.TotalFees, req.AgentKeeps, req.PlatformRevenue, req.Code, req.Status, req.CreatedAt, req.ExpiresAt,
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

// UpdateStatus flips a pending request to the target status in one guarded
// UPDATE and returns the full row. sql.ErrNoRows means the request already
// left the pending state.
func (r *WithdrawalRequestWriterRepository) UpdateStatus(ctx context.Context, code string, status models.RequestStatus) (*models.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $2, confirmed_at = CASE WHEN $2 = 'confirmed' THEN NOW() ELSE confirmed_at END
		WHERE code = $1 AND status = 'pending'
		RETURNING id, user_id, agent_id, amount, currency, agent_fee, platform_fee,
		          total_fees, agent_keeps, platform_revenue, code, status, created_at, expires_at, confirmed_at
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var req models.WithdrawalRequest
	err := sqlx.GetContext(ctx, executor, &req, query, code, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code, status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Reopen puts an expired request back to pending. The sweeper and the lazy
// expiry path call this when the refund credit fails after the status flip,
// so the next sweep pass picks the request up again.
func (r *WithdrawalRequestWriterRepository) Reopen(ctx context.Context, code string) error {
	query := `
		UPDATE withdrawal_requests
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

type WithdrawalRequestReaderRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRequestReaderRepository(db *sqlx.DB) *WithdrawalRequestReaderRepository {
	return &WithdrawalRequestReaderRepository{db: db}
}

func (r *WithdrawalRequestReaderRepository) GetByCode(ctx context.Context, code string) (*models.WithdrawalRequest, error) {
	const query = `
		SELECT id, user_id, agent_id, amount, currency, agent_fee, platform_fee,
		       total_fees, agent_keeps, platform_revenue, code, status, created_at, expires_at, confirmed_at
		FROM withdrawal_requests
		WHERE code = $1
	`

	var req models.WithdrawalRequest
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

// ListExpiredPending returns pending withdrawal requests past their deadline,
// the sweeper's work queue.
func (r *WithdrawalRequestReaderRepository) ListExpiredPending(ctx context.Context, limit int) ([]models.WithdrawalRequest, error) {
	const query = `
		SELECT id, user_id, agent_id, amount, currency, agent_fee, platform_fee,
		       total_fees, agent_keeps, platform_revenue, code, status, created_at, expires_at, confirmed_at
		FROM withdrawal_requests
		WHERE status = 'pending' AND expires_at <= NOW()
		ORDER BY expires_at
		LIMIT $1
	`

	var reqs []models.WithdrawalRequest
	err := r.db.SelectContext(ctx, &reqs, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(reqs),
		"error", err,
	)

	return reqs, err
}
