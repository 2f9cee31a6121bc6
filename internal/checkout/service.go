package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"medstore/internal/cart"
	"medstore/internal/platform/metrics"
	dErrors "medstore/pkg/domain-errors"
	"medstore/pkg/platform/sentinel"
)

// Cart is the slice of the cart store the submitter needs: a snapshot to
// serialize and the one permitted Clear on confirmed success.
type Cart interface {
	Summary() cart.Summary
	Clear()
}

// Poster is the outbound port to the purchase endpoint.
type Poster interface {
	Submit(ctx context.Context, record PurchaseRecord) error
}

// Service validates the cart and identity, serializes a purchase record and
// posts it. The cart is only mutated on a confirmed 2xx, so every failure
// path leaves it in its last-known-good state.
type Service struct {
	cart    Cart
	poster  Poster
	logger  *slog.Logger
	metrics *metrics.Metrics

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time

	// inFlight rejects a second submission while one is outstanding rather
	// than racing a double purchase.
	inFlight atomic.Bool
}

func NewService(c Cart, poster Poster, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{cart: c, poster: poster, logger: logger, metrics: m, now: time.Now}
}

// Submit runs one checkout for the given username. Preconditions are checked
// before any network call: non-empty cart, non-blank username.
func (s *Service) Submit(ctx context.Context, username string) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.metrics.IncCheckout("in_flight")
		return dErrors.New(dErrors.CodeSubmissionInFlight, "a checkout is already in progress")
	}
	defer s.inFlight.Store(false)

	summary := s.cart.Summary()
	if len(summary.Lines) == 0 {
		s.metrics.IncCheckout("empty_cart")
		return dErrors.New(dErrors.CodeEmptyCart, "cart is empty")
	}

	username = strings.TrimSpace(username)
	if username == "" {
		s.metrics.IncCheckout("missing_identity")
		return dErrors.New(dErrors.CodeMissingIdentity, "username is required")
	}

	record := PurchaseRecord{
		Username:  username,
		Total:     summary.Total,
		Items:     ItemsSummary(summary.Lines),
		Timestamp: s.now().Format("1/2/2006, 3:04:05 PM"),
	}

	if err := s.poster.Submit(ctx, record); err != nil {
		return s.translate(ctx, err)
	}

	s.cart.Clear()
	s.metrics.IncCheckout("success")
	s.logger.InfoContext(ctx, "purchase saved", "username", username, "total", record.Total)
	return nil
}

func (s *Service) translate(ctx context.Context, err error) error {
	var rejection *RejectionError
	switch {
	case errors.As(err, &rejection):
		s.metrics.IncCheckout("rejected")
		s.logger.WarnContext(ctx, "purchase rejected",
			"status", rejection.Status,
			"body", rejection.Body,
		)
		return dErrors.New(dErrors.CodeSubmissionRejected, rejection.Body)
	case errors.Is(err, sentinel.ErrUnavailable):
		s.metrics.IncCheckout("network_error")
		s.logger.WarnContext(ctx, "purchase endpoint unreachable", "error", err.Error())
		return dErrors.New(dErrors.CodeNetworkUnavailable, "purchase endpoint unreachable")
	default:
		s.metrics.IncCheckout("error")
		s.logger.ErrorContext(ctx, "checkout failed", "error", err.Error())
		return dErrors.New(dErrors.CodeInternal, "checkout failed")
	}
}

// ItemsSummary renders cart lines as the human-readable purchase items
// string, "name × qty" joined by commas, in insertion order.
func ItemsSummary(lines []cart.Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s × %d", line.Name, line.Quantity))
	}
	return strings.Join(parts, ", ")
}
