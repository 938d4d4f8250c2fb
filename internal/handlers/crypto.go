package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
	"github.com/AfriTokeni/afritokeni-core/internal/services"
)

// CryptoTrader defines the interface that the crypto service must implement.
type CryptoTrader interface {
	Buy(ctx context.Context, userID string, asset models.CryptoAsset, fiatAmount int64, currency, pin string) (*services.CryptoTradeResult, error)
	Sell(ctx context.Context, userID string, asset models.CryptoAsset, cryptoAmount int64, currency, pin string) (*services.CryptoTradeResult, error)
	Swap(ctx context.Context, userID string, fromAsset, toAsset models.CryptoAsset, amount, minOut int64, pin string) (*services.CryptoTradeResult, error)
	Send(ctx context.Context, fromUser, toUser string, asset models.CryptoAsset, amount int64, pin string) error
}

// TradeRequest represents the JSON body for a buy or sell
// swagger:model TradeRequest
type TradeRequest struct {
	// Asset symbol: BTC or USDC
	// required: true
	// default: BTC
	Asset string `json:"asset"`

	// For a buy: fiat amount in minor units. For a sell: crypto amount in
	// smallest units.
	// required: true
	Amount int64 `json:"amount"`

	// Fiat currency code
	// required: true
	// default: UGX
	Currency string `json:"currency"`

	// User's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// SwapRequest represents the JSON body for a crypto-to-crypto swap
// swagger:model SwapRequest
type SwapRequest struct {
	// Asset to sell
	// required: true
	// default: BTC
	FromAsset string `json:"from_asset"`

	// Asset to receive
	// required: true
	// default: USDC
	ToAsset string `json:"to_asset"`

	// Amount to sell, smallest units
	// required: true
	Amount int64 `json:"amount"`

	// Minimum acceptable output, smallest units; 0 disables the check
	MinOut int64 `json:"min_out"`

	// User's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// SendCryptoRequest represents the JSON body for a crypto transfer
// swagger:model SendCryptoRequest
type SendCryptoRequest struct {
	// Recipient user id
	// required: true
	ToUser string `json:"to_user"`

	// Asset symbol
	// required: true
	Asset string `json:"asset"`

	// Amount in smallest units
	// required: true
	Amount int64 `json:"amount"`

	// Sender's transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// TradeResponse represents a completed trade
// swagger:model TradeResponse
type TradeResponse struct {
	// Success message
	Message string `json:"message"`

	// Amount taken from the source balance
	DebitedAmount int64 `json:"debited_amount"`

	// Amount added to the destination balance
	CreditedAmount int64 `json:"credited_amount"`

	// Spread charged, smallest units of the source asset (swaps only)
	Spread int64 `json:"spread,omitempty"`

	// Rate the trade executed at
	Rate string `json:"rate"`
}

// SendCryptoResponse represents a completed crypto transfer
// swagger:model SendCryptoResponse
type SendCryptoResponse struct {
	// Success message
	// default: Transfer completed
	Message string `json:"message"`
}

// NewBuyCryptoHandler returns an HTTP handler for buying crypto with fiat.
// @Summary Buy crypto
// @Description Debits fiat and credits the equivalent crypto at the current exchange rate.
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body handlers.TradeRequest true "Trade Request"
// @Success 200 {object} handlers.TradeResponse "Trade completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 504 {object} handlers.ErrorResponse "Rate service timed out"
// @Router /crypto/buy [post]
// @Security BearerAuth
func NewBuyCryptoHandler(svc CryptoTrader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Buy(r.Context(), userID, models.CryptoAsset(req.Asset), req.Amount, req.Currency, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TradeResponse{
			Message:        "Purchase completed",
			DebitedAmount:  result.DebitedAmount,
			CreditedAmount: result.CreditedAmount,
			Rate:           result.Rate.String(),
		})
	}
}

// NewSellCryptoHandler returns an HTTP handler for selling crypto for fiat.
// @Summary Sell crypto
// @Description Debits crypto and credits the equivalent fiat at the current exchange rate.
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body handlers.TradeRequest true "Trade Request"
// @Success 200 {object} handlers.TradeResponse "Trade completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 504 {object} handlers.ErrorResponse "Rate service timed out"
// @Router /crypto/sell [post]
// @Security BearerAuth
func NewSellCryptoHandler(svc CryptoTrader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Sell(r.Context(), userID, models.CryptoAsset(req.Asset), req.Amount, req.Currency, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TradeResponse{
			Message:        "Sale completed",
			DebitedAmount:  result.DebitedAmount,
			CreditedAmount: result.CreditedAmount,
			Rate:           result.Rate.String(),
		})
	}
}

// NewSwapCryptoHandler returns an HTTP handler for crypto-to-crypto swaps.
// @Summary Swap crypto
// @Description Converts one asset into the other. A basis-point spread comes off the input; the output must clear min_out.
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body handlers.SwapRequest true "Swap Request"
// @Success 200 {object} handlers.TradeResponse "Swap completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request, slippage exceeded, or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /crypto/swap [post]
// @Security BearerAuth
func NewSwapCryptoHandler(svc CryptoTrader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req SwapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Swap(r.Context(), userID,
			models.CryptoAsset(req.FromAsset), models.CryptoAsset(req.ToAsset),
			req.Amount, req.MinOut, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TradeResponse{
			Message:        "Swap completed",
			DebitedAmount:  result.DebitedAmount,
			CreditedAmount: result.CreditedAmount,
			Spread:         result.Spread,
			Rate:           result.Rate.String(),
		})
	}
}

// NewSendCryptoHandler returns an HTTP handler for user-to-user crypto transfers.
// @Summary Send crypto to another user
// @Description Moves crypto between users with no fee.
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body handlers.SendCryptoRequest true "Send Request"
// @Success 200 {object} handlers.SendCryptoResponse "Transfer completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipient not found"
// @Router /crypto/send [post]
// @Security BearerAuth
func NewSendCryptoHandler(svc CryptoTrader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req SendCryptoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Send(r.Context(), userID, req.ToUser, models.CryptoAsset(req.Asset), req.Amount, req.Pin); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SendCryptoResponse{Message: "Transfer completed"})
	}
}
