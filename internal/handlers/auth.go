package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
)

// Tokener extracts and validates the caller's bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// callerID resolves the authenticated user id or writes a 401.
func callerID(tokener Tokener, w http.ResponseWriter, r *http.Request) (string, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}

	userID, err := tokener.GetUserID(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get user id from token", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}

	return userID.String(), true
}
