package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// Loginer defines the interface that the account service must implement.
type Loginer interface {
	Login(ctx context.Context, phone, principal *string, pin string) (*models.User, error)
}

// TokenGenerator issues bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// LoginRequest represents the JSON body for logging in
// swagger:model LoginRequest
type LoginRequest struct {
	// Phone number in E.164 form; at least one of phone_number and
	// principal_id is required
	PhoneNumber *string `json:"phone_number,omitempty"`

	// External principal identifier
	PrincipalID *string `json:"principal_id,omitempty"`

	// Transaction PIN
	// required: true
	Pin string `json:"pin"`
}

// LoginResponse represents a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token for subsequent requests
	Token string `json:"token"`

	// Authenticated user id
	UserID string `json:"user_id"`
}

// NewLoginHandler returns an HTTP handler for logging in with a PIN.
// @Summary Log in
// @Description Verifies the PIN for the account behind a phone number or principal and issues a bearer token.
// @Tags accounts
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Logged in"
// @Failure 401 {object} handlers.ErrorResponse "Invalid PIN"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 429 {object} handlers.ErrorResponse "Too many attempts"
// @Router /login [post]
func NewLoginHandler(svc Loginer, tokens TokenGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Login(r.Context(), req.PhoneNumber, req.PrincipalID, req.Pin)
		if err != nil {
			writeError(w, err)
			return
		}

		id, err := uuid.Parse(user.ID)
		if err != nil {
			logger.Log.Errorw("user id is not a uuid", "user_id", user.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		token, err := tokens.Generate(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to generate token", "user_id", user.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, UserID: user.ID})
	}
}
