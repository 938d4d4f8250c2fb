package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// resolveExecutor picks the request-scoped transaction when one is present in
// the context, falling back to the pool otherwise.
func resolveExecutor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	var executor sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}
