package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
	"github.com/AfriTokeni/afritokeni-core/internal/services"
)

// Registerer defines the interface that the account service must implement.
type Registerer interface {
	Register(ctx context.Context, params services.RegisterParams) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// User type: "user" or "agent"
	// required: true
	// default: user
	UserType string `json:"user_type"`

	// Phone number in E.164 form; at least one of phone_number and
	// principal_id is required
	PhoneNumber *string `json:"phone_number,omitempty"`

	// External principal identifier
	PrincipalID *string `json:"principal_id,omitempty"`

	// First name
	FirstName string `json:"first_name"`

	// Last name
	LastName string `json:"last_name"`

	// Email
	Email string `json:"email"`

	// Preferred fiat currency
	// default: UGX
	PreferredCurrency string `json:"preferred_currency"`

	// Transaction PIN, 4 to 6 digits
	// required: true
	Pin string `json:"pin"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Created user id
	UserID string `json:"user_id"`

	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user or agent
// @Description Creates an account keyed by phone number or principal id and stores the hashed transaction PIN.
// @Tags accounts
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterParams{
			UserType:          models.UserType(req.UserType),
			PhoneNumber:       req.PhoneNumber,
			PrincipalID:       req.PrincipalID,
			FirstName:         req.FirstName,
			LastName:          req.LastName,
			Email:             req.Email,
			PreferredCurrency: req.PreferredCurrency,
			Pin:               req.Pin,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			UserID:  user.ID,
			Message: "User registered successfully",
		})
	}
}
