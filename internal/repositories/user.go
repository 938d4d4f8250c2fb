package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	const query = `
		SELECT id, user_type, phone_number, principal_id, first_name, last_name, email,
		       preferred_currency, kyc_status, is_verified, created_at, last_active
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)

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

	return &user, nil
}

// GetByPhoneOrPrincipal looks a user up by either identifier. A match on
// either one is a hit, so a uniqueness probe with both identifiers finds a
// user holding just one of them. A nil argument skips that identifier.
func (r *UserReadRepository) GetByPhoneOrPrincipal(ctx context.Context, phone, principal *string) (*models.User, error) {
	const query = `
		SELECT id, user_type, phone_number, principal_id, first_name, last_name, email,
		       preferred_currency, kyc_status, is_verified, created_at, last_active
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND phone_number = $1)
		   OR ($2::VARCHAR IS NOT NULL AND principal_id = $2)
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone, principal)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phone, principal},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts or updates a user. Identifiers can be linked by a later save
// but never unlinked: the upsert uses COALESCE so a NULL never overwrites a
// stored phone number or principal.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, user_type, phone_number, principal_id, first_name, last_name, email,
		                   preferred_currency, kyc_status, is_verified, created_at, last_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET phone_number = COALESCE(EXCLUDED.phone_number, users.phone_number),
		    principal_id = COALESCE(EXCLUDED.principal_id, users.principal_id),
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    email = EXCLUDED.email,
		    preferred_currency = EXCLUDED.preferred_currency,
		    kyc_status = EXCLUDED.kyc_status,
		    is_verified = EXCLUDED.is_verified,
		    last_active = NOW()
	`
	args := []any{
		user.ID, user.UserType, user.PhoneNumber, user.PrincipalID,
		user.FirstName, user.LastName, user.Email,
		user.PreferredCurrency, user.KYCStatus, user.IsVerified,
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

// TouchLastActive bumps the activity timestamp used by the new-account fraud
// signal.
func (r *UserWriteRepository) TouchLastActive(ctx context.Context, userID string) error {
	query := `UPDATE users SET last_active = NOW() WHERE id = $1`

	executor := resolveExecutor(ctx, r.db, r.txGetter)
	_, err := executor.ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
