package handlers

import (
	"context"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// BalanceReader defines the interface that the account service must implement.
type BalanceReader interface {
	GetFiatBalances(ctx context.Context, userID string) (map[string]int64, error)
	GetCryptoBalances(ctx context.Context, userID string) (map[models.CryptoAsset]int64, error)
}

// BalanceResponse represents the caller's balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Fiat balances in minor units, keyed by currency code
	Fiat map[string]int64 `json:"fiat"`

	// Crypto holdings in smallest units, keyed by asset symbol
	Crypto map[string]int64 `json:"crypto"`
}

// NewBalanceHandler returns an HTTP handler for reading the caller's balances.
// @Summary Get balances
// @Description Returns all fiat balances (minor units) and crypto holdings (smallest units) of the authenticated user.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Balances"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		fiat, err := svc.GetFiatBalances(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		crypto, err := svc.GetCryptoBalances(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := BalanceResponse{Fiat: fiat, Crypto: make(map[string]int64, len(crypto))}
		for asset, amount := range crypto {
			resp.Crypto[string(asset)] = amount
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
