package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medstore/internal/cart"
	"medstore/internal/catalog"
	"medstore/internal/platform/metrics"
	"medstore/internal/platform/middleware"
	"medstore/pkg/platform/httputil"
)

// CatalogService loads the product list for rendering.
type CatalogService interface {
	Load(ctx context.Context) ([]catalog.Product, error)
}

// CartStore is the mutation surface the storefront exposes over HTTP. All
// operations are synchronous; mutations return nothing because handlers
// respond with the fresh summary.
type CartStore interface {
	Add(name string, price float64, qty int)
	Increase(name string)
	Decrease(name string)
	Summary() cart.Summary
	Clear()
}

// CheckoutService runs one checkout submission.
type CheckoutService interface {
	Submit(ctx context.Context, username string) error
}

// AssistantService answers chat panel messages.
type AssistantService interface {
	Ask(ctx context.Context, message string) (string, error)
}

// Handler is the thin HTTP layer. It delegates to the services without
// embedding business logic so transport concerns remain isolated.
type Handler struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	catalog   CatalogService
	cart      CartStore
	checkout  CheckoutService
	assistant AssistantService
}

func NewHandler(
	logger *slog.Logger,
	m *metrics.Metrics,
	catalogSvc CatalogService,
	cartStore CartStore,
	checkoutSvc CheckoutService,
	assistantSvc AssistantService) *Handler {
	return &Handler{
		logger:    logger,
		metrics:   m,
		catalog:   catalogSvc,
		cart:      cartStore,
		checkout:  checkoutSvc,
		assistant: assistantSvc,
	}
}

// NewRouter wires all public endpoints behind the shared middleware chain.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(h.metrics))

	r.Get("/catalog", h.handleCatalog)

	r.Get("/cart", h.handleCartSummary)
	r.Post("/cart/items", h.handleCartAdd)
	r.Post("/cart/items/{name}/increase", h.handleCartIncrease)
	r.Post("/cart/items/{name}/decrease", h.handleCartDecrease)

	r.Post("/checkout", h.handleCheckout)
	r.Post("/ask", h.handleAsk)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
