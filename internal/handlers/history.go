package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// HistoryReader defines the interface that the account service must implement.
type HistoryReader interface {
	GetHistory(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
}

// HistoryResponse represents a page of the caller's transaction history
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Transactions, newest first
	Transactions []models.Transaction `json:"transactions"`
}

// NewHistoryHandler returns an HTTP handler for the transaction history.
// @Summary Get transaction history
// @Description Returns the authenticated user's transactions, newest first. Supports limit and offset query parameters.
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size, max 100" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} handlers.HistoryResponse "Transaction history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		txns, err := svc.GetHistory(r.Context(), userID, limit, offset)
		if err != nil {
			writeError(w, err)
			return
		}
		if txns == nil {
			txns = []models.Transaction{}
		}

		writeJSON(w, http.StatusOK, HistoryResponse{Transactions: txns})
	}
}
