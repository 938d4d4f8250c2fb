package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// Withdrawer defines the interface that the withdrawal service must implement.
type Withdrawer interface {
	CreateRequest(ctx context.Context, userID, agentID string, amount int64, currency, pin string) (*models.WithdrawalRequest, error)
	Confirm(ctx context.Context, code, agentID, agentPin string) (*models.WithdrawalRequest, error)
	Cancel(ctx context.Context, code, userID string) (*models.WithdrawalRequest, error)
}

// CreateWithdrawalRequest represents the JSON body for starting a cash-out
// swagger:model CreateWithdrawalRequest
type CreateWithdrawalRequest struct {
	// Agent who will hand over the cash
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

// WithdrawalCodeResponse represents an issued withdrawal code
// swagger:model WithdrawalCodeResponse
type WithdrawalCodeResponse struct {
	// Code the user reads to the agent
	Code string `json:"code"`

	// Cash the agent hands over, minor units
	Amount int64 `json:"amount"`

	// Total fees held on top of the amount, minor units
	TotalFees int64 `json:"total_fees"`

	// Total debited from the user's balance, minor units
	Hold int64 `json:"hold"`

	// When the code stops being confirmable
	ExpiresAt time.Time `json:"expires_at"`
}

// ConfirmWithdrawalRequest represents the JSON body for an agent confirmation
// swagger:model ConfirmWithdrawalRequest
type ConfirmWithdrawalRequest struct {
	// Withdrawal code
	// required: true
	Code string `json:"code"`

	// Agent's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// CancelWithdrawalRequest represents the JSON body for a user cancellation
// swagger:model CancelWithdrawalRequest
type CancelWithdrawalRequest struct {
	// Withdrawal code
	// required: true
	Code string `json:"code"`
}

// WithdrawalStatusResponse represents a finalized withdrawal
// swagger:model WithdrawalStatusResponse
type WithdrawalStatusResponse struct {
	// Success message
	Message string `json:"message"`

	// Final status of the request
	Status string `json:"status"`
}

// NewCreateWithdrawalHandler returns an HTTP handler that issues a withdrawal code.
// @Summary Start a cash-out
// @Description Issues a pending withdrawal code and immediately holds amount plus fees from the user's balance.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body handlers.CreateWithdrawalRequest true "Withdrawal Request"
// @Success 201 {object} handlers.WithdrawalCodeResponse "Code issued, hold placed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, outside limits, or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /withdrawals [post]
// @Security BearerAuth
func NewCreateWithdrawalHandler(svc Withdrawer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req CreateWithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		created, err := svc.CreateRequest(r.Context(), userID, req.AgentID, req.Amount, req.Currency, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, WithdrawalCodeResponse{
			Code:      created.Code,
			Amount:    created.Amount,
			TotalFees: created.TotalFees,
			Hold:      created.Amount + created.TotalFees,
			ExpiresAt: created.ExpiresAt,
		})
	}
}

// NewConfirmWithdrawalHandler returns an HTTP handler for the agent-side confirmation.
// @Summary Confirm a cash-out
// @Description Confirms the agent handed over cash. The hold settles and the agent's commission accrues.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body handlers.ConfirmWithdrawalRequest true "Confirm Request"
// @Success 200 {object} handlers.WithdrawalStatusResponse "Withdrawal confirmed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Code belongs to a different agent"
// @Failure 409 {object} handlers.ErrorResponse "Code already processed"
// @Failure 410 {object} handlers.ErrorResponse "Code expired, hold refunded"
// @Router /withdrawals/confirm [post]
// @Security BearerAuth
func NewConfirmWithdrawalHandler(svc Withdrawer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req ConfirmWithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		confirmed, err := svc.Confirm(r.Context(), req.Code, agentID, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalStatusResponse{
			Message: "Withdrawal confirmed",
			Status:  string(confirmed.Status),
		})
	}
}

// NewCancelWithdrawalHandler returns an HTTP handler for the user-side cancellation.
// @Summary Cancel a cash-out
// @Description Cancels a pending withdrawal and refunds the full hold, fees included.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body handlers.CancelWithdrawalRequest true "Cancel Request"
// @Success 200 {object} handlers.WithdrawalStatusResponse "Withdrawal cancelled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Only the requesting user can cancel"
// @Failure 409 {object} handlers.ErrorResponse "Code already processed"
// @Router /withdrawals/cancel [post]
// @Security BearerAuth
func NewCancelWithdrawalHandler(svc Withdrawer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req CancelWithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		cancelled, err := svc.Cancel(r.Context(), req.Code, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalStatusResponse{
			Message: "Withdrawal cancelled",
			Status:  string(cancelled.Status),
		})
	}
}
