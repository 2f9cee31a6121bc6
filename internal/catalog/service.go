package catalog

import (
	"context"
	"log/slog"

	"medstore/internal/platform/metrics"
	dErrors "medstore/pkg/domain-errors"
)

// Loader is the outbound port the service reads through.
type Loader interface {
	Load(ctx context.Context) ([]Product, error)
}

// Service translates client failures into domain errors and records load
// outcomes. It keeps transport handlers free of sentinel inspection.
type Service struct {
	loader  Loader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(loader Loader, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{loader: loader, logger: logger, metrics: m}
}

func (s *Service) Load(ctx context.Context) ([]Product, error) {
	products, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.IncCatalogLoad("failure")
		s.logger.WarnContext(ctx, "catalog load failed", "error", err.Error())
		return nil, dErrors.New(dErrors.CodeCatalogUnavailable, "catalog is unavailable")
	}
	s.metrics.IncCatalogLoad("success")
	return products, nil
}
