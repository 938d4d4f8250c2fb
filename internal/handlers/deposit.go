package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// DepositRequester defines the interface that the deposit service must implement.
type DepositRequester interface {
	CreateRequest(ctx context.Context, userID, agentID string, amount int64, currency, pin string) (*models.DepositRequest, error)
	Confirm(ctx context.Context, code, agentID, agentPin string) (*models.DepositRequest, error)
}

// CreateDepositRequest represents the JSON body for starting a cash-in
// swagger:model CreateDepositRequest
type CreateDepositRequest struct {
	// Agent who will receive the cash
	// required: true
	AgentID string `json:"agent_id"`

	// Amount in currency minor units
	// required: true
	// default: 100000
	Amount int64 `json:"amount"`

	// Currency code
	// required: true
	// default: UGX
	Currency string `json:"currency"`

	// User's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// DepositCodeResponse represents an issued deposit code
// swagger:model DepositCodeResponse
type DepositCodeResponse struct {
	// Code the user reads to the agent
	Code string `json:"code"`

	// Amount the user will hand over, minor units
	Amount int64 `json:"amount"`

	// Amount credited to the user after the agent's commission
	NetAmount int64 `json:"net_amount"`

	// Agent's commission, minor units
	AgentCommission int64 `json:"agent_commission"`

	// When the code stops being confirmable
	ExpiresAt time.Time `json:"expires_at"`
}

// ConfirmDepositRequest represents the JSON body for an agent confirmation
// swagger:model ConfirmDepositRequest
type ConfirmDepositRequest struct {
	// Deposit code
	// required: true
	Code string `json:"code"`

	// Agent's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// ConfirmDepositResponse represents a settled deposit
// swagger:model ConfirmDepositResponse
type ConfirmDepositResponse struct {
	// Success message
	// default: Deposit confirmed
	Message string `json:"message"`

	// Amount credited to the user, minor units
	NetAmount int64 `json:"net_amount"`

	// Commission kept by the agent, minor units
	AgentKeeps int64 `json:"agent_keeps"`
}

// NewCreateDepositHandler returns an HTTP handler that issues a deposit code.
// @Summary Start a cash-in
// @Description Issues a pending deposit code for an agent. No balance moves until the agent confirms receipt of cash.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body handlers.CreateDepositRequest true "Deposit Request"
// @Success 201 {object} handlers.DepositCodeResponse "Code issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or outside limits"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /deposits [post]
// @Security BearerAuth
func NewCreateDepositHandler(svc DepositRequester, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req CreateDepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		created, err := svc.CreateRequest(r.Context(), userID, req.AgentID, req.Amount, req.Currency, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, DepositCodeResponse{
			Code:            created.Code,
			Amount:          created.Amount,
			NetAmount:       created.Amount - created.AgentCommission,
			AgentCommission: created.AgentCommission,
			ExpiresAt:       created.ExpiresAt,
		})
	}
}

// NewConfirmDepositHandler returns an HTTP handler for the agent-side confirmation.
// @Summary Confirm a cash-in
// @Description Confirms the agent received cash. Credits the user net of commission and accrues the agent's share.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body handlers.ConfirmDepositRequest true "Confirm Request"
// @Success 200 {object} handlers.ConfirmDepositResponse "Deposit confirmed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Code belongs to a different agent"
// @Failure 409 {object} handlers.ErrorResponse "Code already processed"
// @Failure 410 {object} handlers.ErrorResponse "Code expired"
// @Router /deposits/confirm [post]
// @Security BearerAuth
func NewConfirmDepositHandler(svc DepositRequester, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req ConfirmDepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		confirmed, err := svc.Confirm(r.Context(), req.Code, agentID, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConfirmDepositResponse{
			Message:    "Deposit confirmed",
			NetAmount:  confirmed.Amount - confirmed.AgentCommission,
			AgentKeeps: confirmed.AgentKeeps,
		})
	}
}
