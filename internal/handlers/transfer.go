package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/services"
)

// Transferrer defines the interface that the transfer service must implement.
type Transferrer interface {
	TransferFiat(ctx context.Context, fromUser, toUser string, amount int64, currency, pin string) (*services.TransferResult, error)
}

// TransferRequest represents the JSON body for a fiat transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient user id
	// required: true
	ToUser string `json:"to_user"`

	// Amount in currency minor units
	// required: true
	// default: 100000
	Amount int64 `json:"amount"`

	// Currency code
	// required: true
	// default: UGX
	Currency string `json:"currency"`

	// Sender's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// TransferResponse represents a successful transfer
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Transfer completed
	Message string `json:"message"`

	// Fee charged to the sender, minor units
	Fee int64 `json:"fee"`

	// Sender's balance after the transfer
	NewBalance int64 `json:"new_balance"`
}

// NewTransferHandler returns an HTTP handler for user-to-user fiat transfers.
// @Summary Transfer fiat to another user
// @Description Moves fiat from the authenticated user to the recipient. The sender pays the amount plus a basis-point fee.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Blocked by fraud check"
// @Router /wallet/transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc Transferrer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.TransferFiat(r.Context(), userID, req.ToUser, req.Amount, req.Currency, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TransferResponse{
			Message:    "Transfer completed",
			Fee:        result.Fee,
			NewBalance: result.SenderNewBalance,
		})
	}
}
