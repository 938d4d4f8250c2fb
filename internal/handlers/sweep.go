package handlers

import (
	"context"
	"net/http"

	"github.com/AfriTokeni/afritokeni-core/internal/services"
)

// ExpirySweeper defines the interface that the sweeper must implement.
type ExpirySweeper interface {
	SweepExpired(ctx context.Context) (services.SweepSummary, error)
}

// NewSweepHandler returns an HTTP handler that triggers an expiry sweep. The
// background loop runs on an interval; this endpoint exists for operators.
// @Summary Sweep expired codes and escrows
// @Description Expires overdue withdrawal holds and escrows and refunds them. Safe to call repeatedly.
// @Tags admin
// @Produce json
// @Success 200 {object} services.SweepSummary "Sweep summary"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /admin/sweep [post]
// @Security BearerAuth
func NewSweepHandler(svc ExpirySweeper, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := callerID(tokener, w, r); !ok {
			return
		}

		summary, err := svc.SweepExpired(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
