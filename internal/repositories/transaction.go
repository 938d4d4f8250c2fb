package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// TransactionWriterRepository appends to the transaction log. Rows are never
// updated after insertion.
type TransactionWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriterRepository) Save(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, from_user, to_user, amount, currency, status, created_at, completed_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		txn.ID, txn.Type, txn.FromUser, txn.ToUser, txn.Amount, txn.Currency,
		txn.Status, txn.CreatedAt, txn.CompletedAt, txn.Description,
	}

	executor := resolveExecutor(ctx, r.db, r.txGetter)
	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// TransactionReaderRepository serves history queries and the fraud engine's
// evidence lookups.
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

// ListByUser returns the user's transactions (either side), newest first.
func (r *TransactionReaderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	const query = `
		SELECT id, type, from_user, to_user, amount, currency, status, created_at, completed_at, description
		FROM transactions
		WHERE from_user = $1 OR to_user = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, userID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// CountSince counts the user's outgoing transactions created after the cutoff.
func (r *TransactionReaderRepository) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM transactions
		WHERE from_user = $1 AND created_at >= $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, since},
		"result", count,
		"error", err,
	)

	return count, err
}

// SumSince totals the user's outgoing amounts created after the cutoff, the
// daily-cap evidence.
func (r *TransactionReaderRepository) SumSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE from_user = $1 AND created_at >= $2
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, since},
		"result", total,
		"error", err,
	)

	return total, err
}

// CountSameAmountSince counts outgoing transactions with an exact amount
// match after the cutoff, the structuring signal's evidence.
func (r *TransactionReaderRepository) CountSameAmountSince(ctx context.Context, userID string, amount int64, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM transactions
		WHERE from_user = $1 AND amount = $2 AND created_at >= $3
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, amount, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount, since},
		"result", count,
		"error", err,
	)

	return count, err
}
