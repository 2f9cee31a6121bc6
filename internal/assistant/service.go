package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"medstore/internal/catalog"
	dErrors "medstore/pkg/domain-errors"
)

// Match cutoffs: a generous direct-hit threshold because queries are often
// partial brand names, and a loose one for suggesting alternatives.
const (
	directCutoff      = 0.4
	alternativeCutoff = 0.2
	maxAlternatives   = 3
)

var greetings = []string{"اهلا", "مرحبا", "السلام عليكم", "hi", "hello"}

// CatalogSource loads the products the responder answers from.
type CatalogSource interface {
	Load(ctx context.Context) ([]catalog.Product, error)
}

// Upstream forwards a message to an external inference endpoint.
type Upstream interface {
	Ask(ctx context.Context, message string) (string, error)
}

// Service answers chat panel queries. By default it matches the message
// against the live catalog the way the original local inference server did;
// when an upstream is configured, the message is proxied there instead.
type Service struct {
	catalog  CatalogSource
	upstream Upstream
	logger   *slog.Logger
}

func NewService(source CatalogSource, upstream Upstream, logger *slog.Logger) *Service {
	return &Service{catalog: source, upstream: upstream, logger: logger}
}

// Ask resolves one chat message into a reply.
func (s *Service) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "message is required")
	}

	if s.upstream != nil {
		return s.upstream.Ask(ctx, message)
	}

	if slices.Contains(greetings, strings.ToLower(message)) {
		return "أهلاً! كيف يمكنني مساعدتك؟", nil
	}

	products, err := s.catalog.Load(ctx)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(products))
	byName := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		names = append(names, p.Name)
		if _, ok := byName[p.Name]; !ok {
			byName[p.Name] = p
		}
	}

	if match := closeMatches(message, names, 1, directCutoff); len(match) > 0 {
		return describe(byName[match[0]]), nil
	}

	if alternatives := closeMatches(message, names, maxAlternatives, alternativeCutoff); len(alternatives) > 0 {
		lines := make([]string, 0, len(alternatives))
		for _, name := range alternatives {
			lines = append(lines, fmt.Sprintf("- %s (%v$)", name, byName[name].Price))
		}
		return "❌ المنتج غير موجود.\n\n🔄 بدائل قريبة:\n" + strings.Join(lines, "\n"), nil
	}

	return "❌ المنتج غير موجود في قاعدة البيانات.", nil
}

func describe(p catalog.Product) string {
	if p.Stock > 0 {
		return fmt.Sprintf("✔ المنتج متوفر\n\n📌 الاسم: %s\n💰 السعر: %v$\n📦 المتوفر: %d", p.Name, p.Price, p.Stock)
	}
	return fmt.Sprintf("❌ المنتج **%s** غير متوفر حالياً.", p.Name)
}
