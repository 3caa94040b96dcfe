package catalog

import (
	"context"
	"time"

	"printaro-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetConfiguratorProduct(ctx context.Context, slug string) (*Product, error)
	GetFileSpecs(ctx context.Context, slug string) (*FileSpecs, error)
	ListProducts(ctx context.Context) ([]ProductSummary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetConfiguratorProduct loads a product definition and validates the
// invariants the engine depends on before handing it out.
func (s *service) GetConfiguratorProduct(ctx context.Context, slug string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetConfiguratorProduct"),
		zap.String("slug", slug),
	)

	start := time.Now()

	product, err := s.repo.GetConfiguratorProduct(ctx, slug)
	if err != nil {
		if err == ErrProductNotFound {
			log.Debug("product not found")
		} else {
			log.Error("failed to load configurator product", zap.Error(err))
		}
		return nil, err
	}

	if err := product.Validate(); err != nil {
		log.Error("product failed boundary validation", zap.Error(err))
		return nil, err
	}

	log.Debug("configurator product loaded",
		zap.Int("materials", len(product.Materials)),
		zap.Int("print_methods", len(product.PrintMethods)),
		zap.Int("finishing", len(product.Finishing)),
		zap.Duration("duration", time.Since(start)),
	)

	return product, nil
}

func (s *service) GetFileSpecs(ctx context.Context, slug string) (*FileSpecs, error) {
	return s.repo.GetFileSpecs(ctx, slug)
}

func (s *service) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	return s.repo.ListProducts(ctx)
}
