package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// IdentifierLinker defines the interface that the account service must implement.
type IdentifierLinker interface {
	LinkIdentifier(ctx context.Context, userID string, phone, principal *string) (*models.User, error)
}

// LinkIdentifierRequest represents the JSON body for linking an identifier
// swagger:model LinkIdentifierRequest
type LinkIdentifierRequest struct {
	// Phone number in E.164 form; at least one of phone_number and
	// principal_id is required
	PhoneNumber *string `json:"phone_number,omitempty"`

	// External principal identifier
	PrincipalID *string `json:"principal_id,omitempty"`
}

// LinkIdentifierResponse represents a successful link response
// swagger:model LinkIdentifierResponse
type LinkIdentifierResponse struct {
	// User id
	UserID string `json:"user_id"`

	// Linked phone number, if any
	PhoneNumber *string `json:"phone_number,omitempty"`

	// Linked principal, if any
	PrincipalID *string `json:"principal_id,omitempty"`

	// Success message
	// default: Identifier linked successfully
	Message string `json:"message"`
}

// NewLinkIdentifierHandler returns an HTTP handler for linking a phone number
// or principal to the caller's account.
// @Summary Link a phone number or principal
// @Description Attaches an additional identifier to the authenticated account. Identifiers can be added where none is set but are never changed or removed.
// @Tags accounts
// @Accept json
// @Produce json
// @Param linkRequest body handlers.LinkIdentifierRequest true "Identifier link request"
// @Success 200 {object} handlers.LinkIdentifierResponse "Identifier linked"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /account/link [post]
// @Security BearerAuth
func NewLinkIdentifierHandler(svc IdentifierLinker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(tokener, w, r)
		if !ok {
			return
		}

		var req LinkIdentifierRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.LinkIdentifier(r.Context(), userID, req.PhoneNumber, req.PrincipalID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LinkIdentifierResponse{
			UserID:      user.ID,
			PhoneNumber: user.PhoneNumber,
			PrincipalID: user.PrincipalID,
			Message:     "Identifier linked successfully",
		})
	}
}
