package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
)

// SequenceRepository hands out the monotonically increasing numbers embedded
// in transaction codes. Backed by a Postgres sequence so concurrent requests
// never collide.
type SequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

func (r *SequenceRepository) Next(ctx context.Context) (uint64, error) {
	const query = `SELECT nextval('transaction_code_seq')`

	var next uint64
	err := r.db.GetContext(ctx, &next, query)

	logger.Log.Infow(
		"query", query,
		"result", next,
		"error", err,
	)

	return next, err
}
