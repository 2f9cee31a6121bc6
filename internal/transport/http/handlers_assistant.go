package httptransport

import (
	"encoding/json"
	"net/http"

	"medstore/internal/platform/middleware"
	dErrors "medstore/pkg/domain-errors"
	"medstore/pkg/platform/httputil"
)

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	reply, err := h.assistant.Ask(ctx, req.Message)
	if err != nil {
		h.logger.WarnContext(ctx, "assistant query failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, askResponse{Reply: reply})
}
