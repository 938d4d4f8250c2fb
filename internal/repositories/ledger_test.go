package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(64) PRIMARY KEY,
			user_type VARCHAR(10) NOT NULL,
			phone_number VARCHAR(20) UNIQUE,
			principal_id VARCHAR(64) UNIQUE,
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(100) NOT NULL DEFAULT '',
			preferred_currency CHAR(3) NOT NULL DEFAULT 'KES',
			kyc_status VARCHAR(20) NOT NULL DEFAULT 'not_started',
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_active TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS fiat_balances (
			user_id VARCHAR(64) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			currency CHAR(3) NOT NULL,
			balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, currency)
		);`,
		`CREATE TABLE IF NOT EXISTS crypto_balances (
			user_id VARCHAR(64) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			asset VARCHAR(10) NOT NULL,
			amount BIGINT NOT NULL DEFAULT 0 CHECK (amount >= 0),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, asset)
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---
func seedUser(t *testing.T, db *sqlx.DB, id string) {
	_, err := db.Exec(`INSERT INTO users (id, user_type) VALUES ($1, 'user')`, id)
	assert.NoError(t, err)
}

func TestCreditFiat(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, db, "user-1")

	writer := NewLedgerWriterRepository(db, nil)

	balance, err := writer.CreditFiat(ctx, "user-1", "KES", 100_000)
	assert.NoError(t, err)
	assert.Equal(t, int64(100_000), balance)

	balance, err = writer.CreditFiat(ctx, "user-1", "KES", 50_000)
	assert.NoError(t, err)
	assert.Equal(t, int64(150_000), balance)
}

func TestDebitFiat(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, db, "user-2")

	writer := NewLedgerWriterRepository(db, nil)

	_, err := writer.CreditFiat(ctx, "user-2", "KES", 100_000)
	assert.NoError(t, err)

	balance, err := writer.DebitFiat(ctx, "user-2", "KES", 40_000)
	assert.NoError(t, err)
	assert.Equal(t, int64(60_000), balance)

	// Overdraft is rejected without touching the balance.
	_, err = writer.DebitFiat(ctx, "user-2", "KES", 60_001)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	reader := NewLedgerReaderRepository(db)
	balance, err = reader.GetFiatBalance(ctx, "user-2", "KES")
	assert.NoError(t, err)
	assert.Equal(t, int64(60_000), balance)
}

func TestDebitFiat_NoRow(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, db, "user-3")

	writer := NewLedgerWriterRepository(db, nil)

	_, err := writer.DebitFiat(ctx, "user-3", "UGX", 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCryptoLedger(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, db, "user-4")

	writer := NewLedgerWriterRepository(db, nil)

	amount, err := writer.CreditCrypto(ctx, "user-4", models.AssetBTC, 250_000)
	assert.NoError(t, err)
	assert.Equal(t, int64(250_000), amount)

	amount, err = writer.DebitCrypto(ctx, "user-4", models.AssetBTC, 100_000)
	assert.NoError(t, err)
	assert.Equal(t, int64(150_000), amount)

	_, err = writer.DebitCrypto(ctx, "user-4", models.AssetUSDC, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	reader := NewLedgerReaderRepository(db)
	amounts, err := reader.GetCryptoBalances(ctx, "user-4")
	assert.NoError(t, err)
	assert.Equal(t, int64(150_000), amounts[models.AssetBTC])
}

func TestGetFiatBalances(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	seedUser(t, db, "user-5")

	writer := NewLedgerWriterRepository(db, nil)
	_, err := writer.CreditFiat(ctx, "user-5", "KES", 10_000)
	assert.NoError(t, err)
	_, err = writer.CreditFiat(ctx, "user-5", "UGX", 20_000)
	assert.NoError(t, err)

	reader := NewLedgerReaderRepository(db)
	balances, err := reader.GetFiatBalances(ctx, "user-5")
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"KES": 10_000, "UGX": 20_000}, balances)

	// Unknown currency reads as zero.
	balance, err := reader.GetFiatBalance(ctx, "user-5", "NGN")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}
