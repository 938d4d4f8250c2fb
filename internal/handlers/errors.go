package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
)

// ErrorResponse is the error body every endpoint returns.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	var e *errs.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidInput, errs.KindOverflow, errs.KindLimitViolation, errs.KindInsufficientBalance:
		return http.StatusBadRequest
	case errs.KindInvalidPin:
		return http.StatusUnauthorized
	case errs.KindNotAuthorized, errs.KindBlocked:
		return http.StatusForbidden
	case errs.KindAlreadyProcessed:
		return http.StatusConflict
	case errs.KindExpired:
		return http.StatusGone
	case errs.KindTooManyAttempts:
		return http.StatusTooManyRequests
	case errs.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends the sanitized message with the mapped status.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: errs.UserMessage(err)})
}

// writeJSON sends a success body.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
