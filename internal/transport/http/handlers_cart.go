package httptransport

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"medstore/internal/platform/middleware"
	dErrors "medstore/pkg/domain-errors"
	"medstore/pkg/platform/httputil"
)

type addItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (h *Handler) handleCartSummary(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.cart.Summary())
}

// handleCartAdd creates or accumulates a line. Quantity defaults to 1 when
// omitted, mirroring the widget's add button.
func (h *Handler) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid add request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if req.Name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "name is required"))
		return
	}
	if req.Price < 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "price must not be negative"))
		return
	}
	if req.Quantity < 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "quantity must be positive"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	h.cart.Add(req.Name, req.Price, req.Quantity)
	h.metrics.IncCartMutation("add")
	httputil.WriteJSON(w, http.StatusOK, h.cart.Summary())
}

// Increase and decrease are no-ops for unknown names: the widget may hold a
// stale reference to a line that was already removed, and that must not be
// an error.
func (h *Handler) handleCartIncrease(w http.ResponseWriter, r *http.Request) {
	h.cart.Increase(itemName(r))
	h.metrics.IncCartMutation("increase")
	httputil.WriteJSON(w, http.StatusOK, h.cart.Summary())
}

func (h *Handler) handleCartDecrease(w http.ResponseWriter, r *http.Request) {
	h.cart.Decrease(itemName(r))
	h.metrics.IncCartMutation("decrease")
	httputil.WriteJSON(w, http.StatusOK, h.cart.Summary())
}

// itemName pulls the product name from the route, undoing URL escaping so
// names with spaces or Arabic script round-trip.
func itemName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
