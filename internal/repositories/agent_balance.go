package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// AgentBalanceWriterRepository accrues agent cash totals and commission.
type AgentBalanceWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAgentBalanceWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AgentBalanceWriterRepository {
	return &AgentBalanceWriterRepository{db: db, txGetter: txGetter}
}

// Accrue adds the settled figures from one confirmed cash operation. Any of
// the deltas may be zero.
func (r *AgentBalanceWriterRepository) Accrue(ctx context.Context, agentID, currency string, deposits, withdrawals, commission int64) error {
	query := `
		INSERT INTO agent_balances (agent_id, currency, total_deposits, total_withdrawals, commission_earned, last_updated)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (agent_id, currency)
		DO UPDATE SET total_deposits = agent_balances.total_deposits + EXCLUDED.total_deposits,
		              total_withdrawals = agent_balances.total_withdrawals + EXCLUDED.total_withdrawals,
		              commission_earned = agent_balances.commission_earned + EXCLUDED.commission_earned,
		              last_updated = NOW()
	`
	args := []any{agentID, currency, deposits, withdrawals, commission}

	executor := resolveExecutor(ctx, r.db, r.txGetter)
	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

type AgentBalanceReaderRepository struct {
	db *sqlx.DB
}

func NewAgentBalanceReaderRepository(db *sqlx.DB) *AgentBalanceReaderRepository {
	return &AgentBalanceReaderRepository{db: db}
}

// GetByAgentID returns the agent's accruals across all currencies.
func (r *AgentBalanceReaderRepository) GetByAgentID(ctx context.Context, agentID string) ([]models.AgentBalance, error) {
	const query = `
		SELECT agent_id, currency, total_deposits, total_withdrawals, commission_earned, last_updated
		FROM agent_balances
		WHERE agent_id = $1
		ORDER BY currency
	`

	var balances []models.AgentBalance
	err := r.db.SelectContext(ctx, &balances, query, agentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID},
		"result", len(balances),
		"error", err,
	)

	return balances, err
}
