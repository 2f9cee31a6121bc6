package httptransport

import (
	"encoding/json"
	"net/http"

	"medstore/internal/platform/middleware"
	dErrors "medstore/pkg/domain-errors"
	"medstore/pkg/platform/httputil"
)

type checkoutRequest struct {
	Username string `json:"username"`
}

// handleCheckout submits the current cart. On success the service has
// already cleared the store; the widget resets its identity field on 201.
func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid checkout request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.checkout.Submit(ctx, req.Username); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"message": "invoice saved"})
}
