package handlers

import (
	"context"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// AgentBalancer defines the interface that the account service must implement.
type AgentBalancer interface {
	GetAgentBalances(ctx context.Context, agentID string) ([]models.AgentBalance, error)
}

// AgentBalancesResponse represents an agent's accrued totals
// swagger:model AgentBalancesResponse
type AgentBalancesResponse struct {
	// Per-currency accruals
	Balances []models.AgentBalance `json:"balances"`
}

// NewAgentBalancesHandler returns an HTTP handler for an agent's accruals.
// @Summary Get agent balances
// @Description Returns the authenticated agent's total deposits handled, withdrawals handled and commission earned per currency.
// @Tags agent
// @Produce json
// @Success 200 {object} handlers.AgentBalancesResponse "Agent balances"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an agent"
// @Router /agent/balances [get]
// @Security BearerAuth
func NewAgentBalancesHandler(svc AgentBalancer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		balances, err := svc.GetAgentBalances(r.Context(), agentID)
		if err != nil {
			writeError(w, err)
			return
		}
		if balances == nil {
			balances = []models.AgentBalance{}
		}

		writeJSON(w, http.StatusOK, AgentBalancesResponse{Balances: balances})
	}
}
