package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// LedgerWriterRepository handles balance mutations. All amounts are integer
// minor units; debits are guarded in SQL so a balance can never go negative.
type LedgerWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLedgerWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LedgerWriterRepository {
	return &LedgerWriterRepository{db: db, txGetter: txGetter}
}

// CreditFiat performs an UPSERT: creates the balance row if not exists,
// otherwise increases it. Returns the new balance.
func (r *LedgerWriterRepository) CreditFiat(ctx context.Context, userID, currency string, amount int64) (int64, error) {
	query := `
		INSERT INTO fiat_balances (user_id, currency, balance, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = fiat_balances.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var balance int64
	err := sqlx.GetContext(ctx, executor, &balance, query, userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// DebitFiat decreases a balance in a single guarded UPDATE. Returns
// sql.ErrNoRows when the balance does not cover the amount.
func (r *LedgerWriterRepository) DebitFiat(ctx context.Context, userID, currency string, amount int64) (int64, error) {
	query := `
		UPDATE fiat_balances
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var balance int64
	err := sqlx.GetContext(ctx, executor, &balance, query, userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return balance, nil
}

// CreditCrypto increases a crypto holding. Amounts are satoshis for BTC and
// micro units for USDC.
func (r *LedgerWriterRepository) CreditCrypto(ctx context.Context, userID string, asset models.CryptoAsset, amount int64) (int64, error) {
	query := `
		INSERT INTO crypto_balances (user_id, asset, amount, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, asset)
		DO UPDATE SET amount = crypto_balances.amount + EXCLUDED.amount, updated_at = NOW()
		RETURNING amount
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var amountAfter int64
	err := sqlx.GetContext(ctx, executor, &amountAfter, query, userID, asset, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, asset, amount},
		"result", amountAfter,
		"error", err,
	)

	return amountAfter, err
}

// DebitCrypto decreases a crypto holding with the same guard as DebitFiat.
func (r *LedgerWriterRepository) DebitCrypto(ctx context.Context, userID string, asset models.CryptoAsset, amount int64) (int64, error) {
	query := `
		UPDATE crypto_balances
		SET amount = amount - $3, updated_at = NOW()
		WHERE user_id = $1 AND asset = $2 AND amount >= $3
		RETURNING amount
	`

	executor := resolveExecutor(ctx, r.db, r.txGetter)

	var amountAfter int64
	err := sqlx.GetContext(ctx, executor, &amountAfter, query, userID, asset, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, asset, amount},
		"result", amountAfter,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return amountAfter, nil
}

// LedgerReaderRepository handles balance read operations
type LedgerReaderRepository struct {
	db *sqlx.DB
}

func NewLedgerReaderRepository(db *sqlx.DB) *LedgerReaderRepository {
	return &LedgerReaderRepository{db: db}
}

// GetFiatBalances retrieves all fiat balances for a user as map[currency]balance
func (r *LedgerReaderRepository) GetFiatBalances(ctx context.Context, userID string) (map[string]int64, error) {
	const query = `
		SELECT currency, balance
		FROM fiat_balances
		WHERE user_id = $1
	`

	var rows []struct {
		Currency string `db:"currency"`
		Balance  int64  `db:"balance"`
	}

	err := r.db.SelectContext(ctx, &rows, query, userID)

	balances := make(map[string]int64, len(rows))
	for _, row := range rows {
		balances[row.Currency] = row.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balances,
		"error", err,
	)

	return balances, err
}

// GetFiatBalance retrieves a single currency balance, zero if the row does
// not exist yet.
func (r *LedgerReaderRepository) GetFiatBalance(ctx context.Context, userID, currency string) (int64, error) {
	const query = `
		SELECT balance
		FROM fiat_balances
		WHERE user_id = $1 AND currency = $2
	`

	var balance int64
	err := r.db.GetContext(ctx, &balance, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", balance,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	return balance, err
}

// GetCryptoBalances retrieves all crypto holdings for a user as map[asset]amount
func (r *LedgerReaderRepository) GetCryptoBalances(ctx context.Context, userID string) (map[models.CryptoAsset]int64, error) {
	const query = `
		SELECT asset, amount
		FROM crypto_balances
		WHERE user_id = $1
	`

	var rows []struct {
		Asset  models.CryptoAsset `db:"asset"`
		Amount int64              `db:"amount"`
	}

	err := r.db.SelectContext(ctx, &rows, query, userID)

	amounts := make(map[models.CryptoAsset]int64, len(rows))
	for _, row := range rows {
		amounts[row.Asset] = row.Amount
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", amounts,
		"error", err,
	)

	return amounts, err
}

// GetCryptoBalance retrieves a single asset holding, zero if absent.
func (r *LedgerReaderRepository) GetCryptoBalance(ctx context.Context, userID string, asset models.CryptoAsset) (int64, error) {
	const query = `
		SELECT amount
		FROM crypto_balances
		WHERE user_id = $1 AND asset = $2
	`

	var amount int64
	err := r.db.GetContext(ctx, &amount, query, userID, asset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, asset},
		"result", amount,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	return amount, err
}
