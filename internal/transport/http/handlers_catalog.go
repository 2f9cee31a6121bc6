package httptransport

import (
	"net/http"

	"medstore/internal/catalog"
	"medstore/internal/platform/middleware"
	"medstore/pkg/platform/httputil"
)

type catalogResponse struct {
	Products []catalog.Product `json:"products"`
}

// handleCatalog serves the product list. A failed load answers with a coded
// error so the widget can tell "load failed" apart from an empty catalog.
func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.Load(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "catalog unavailable",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}

	httputil.WriteJSON(w, http.StatusOK, catalogResponse{Products: products})
}
