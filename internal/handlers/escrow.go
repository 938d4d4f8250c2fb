package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// Escrower defines the interface that the escrow service must implement.
type Escrower interface {
	Create(ctx context.Context, userID, agentID string, asset models.CryptoAsset, amount int64, pin string) (*models.Escrow, error)
	Claim(ctx context.Context, code, agentID string) (*models.Escrow, error)
	Cancel(ctx context.Context, code, userID string) (*models.Escrow, error)
}

// CreateEscrowRequest represents the JSON body for locking crypto in escrow
// swagger:model CreateEscrowRequest
type CreateEscrowRequest struct {
	// Agent who will claim the escrow
	// required: true
	AgentID string `json:"agent_id"`

	// Asset symbol
	// required: true
	// default: BTC
	Asset string `json:"asset"`

	// Amount in smallest units
	// required: true
	Amount int64 `json:"amount"`

	// User's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// EscrowCodeResponse represents a created escrow
// swagger:model EscrowCodeResponse
type EscrowCodeResponse struct {
	// Code the user reads to the agent
	Code string `json:"code"`

	// Locked amount, smallest units
	Amount int64 `json:"amount"`

	// When the sweeper refunds an unclaimed escrow
	ExpiresAt time.Time `json:"expires_at"`
}

// EscrowActionRequest represents the JSON body for a claim or cancellation
// swagger:model EscrowActionRequest
type EscrowActionRequest struct {
	// Escrow code
	// required: true
	Code string `json:"code"`
}

// EscrowStatusResponse represents a finalized escrow
// swagger:model EscrowStatusResponse
type EscrowStatusResponse struct {
	// Success message
	Message string `json:"message"`

	// Final status of the escrow
	Status string `json:"status"`
}

// NewCreateEscrowHandler returns an HTTP handler that locks crypto in escrow.
// @Summary Create an escrow
// @Description Debits the user's crypto immediately and issues a code only the named agent can claim.
// @Tags escrow
// @Accept json
// @Produce json
// @Param request body handlers.CreateEscrowRequest true "Escrow Request"
// @Success 201 {object} handlers.EscrowCodeResponse "Escrow created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /escrows [post]
// @Security BearerAuth
func NewCreateEscrowHandler(svc Escrower, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req CreateEscrowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		escrow, err := svc.Create(r.Context(), userID, req.AgentID, models.CryptoAsset(req.Asset), req.Amount, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, EscrowCodeResponse{
			Code:      escrow.Code,
			Amount:    escrow.Amount,
			ExpiresAt: escrow.ExpiresAt,
		})
	}
}

// NewClaimEscrowHandler returns an HTTP handler for the agent-side claim.
// @Summary Claim an escrow
// @Description Credits the escrowed crypto to the authenticated agent if the code names them and has not expired.
// @Tags escrow
// @Accept json
// @Produce json
// @Param request body handlers.EscrowActionRequest true "Claim Request"
// @Success 200 {object} handlers.EscrowStatusResponse "Escrow claimed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Escrow belongs to a different agent"
// @Failure 409 {object} handlers.ErrorResponse "Escrow already processed"
// @Failure 410 {object} handlers.ErrorResponse "Escrow expired, funds refunded"
// @Router /escrows/claim [post]
// @Security BearerAuth
func NewClaimEscrowHandler(svc Escrower, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req EscrowActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		claimed, err := svc.Claim(r.Context(), req.Code, agentID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, EscrowStatusResponse{
			Message: "Escrow claimed",
			Status:  string(claimed.Status),
		})
	}
}

// NewCancelEscrowHandler returns an HTTP handler for the owner-side cancellation.
// @Summary Cancel an escrow
// @Description Refunds the escrowed crypto to the owner while the escrow is still pending.
// @Tags escrow
// @Accept json
// @Produce json
// @Param request body handlers.EscrowActionRequest true "Cancel Request"
// @Success 200 {object} handlers.EscrowStatusResponse "Escrow cancelled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Only the escrow owner can cancel"
// @Failure 409 {object} handlers.ErrorResponse "Escrow already processed"
// @Router /escrows/cancel [post]
// @Security BearerAuth
func NewCancelEscrowHandler(svc Escrower, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req EscrowActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		cancelled, err := svc.Cancel(r.Context(), req.Code, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, EscrowStatusResponse{
			Message: "Escrow cancelled",
			Status:  string(cancelled.Status),
		})
	}
}
