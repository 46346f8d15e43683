package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/shopsim/internal/dependencies/random"
	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/storage"
)

// DefaultSize is how many products a fresh catalog holds
const DefaultSize = 20

// Service owns the set of products available to put in carts
type Service struct {
	storage   storage.Storage
	generator *Generator
	random    random.Random
	logger    *slog.Logger
}

// New creates a new catalog Service
func New(storage storage.Storage, generator *Generator, random random.Random, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{
		storage:   storage,
		generator: generator,
		random:    random,
		logger:    logger,
	}
}

// Populate generates n products and saves them
func (s *Service) Populate(ctx context.Context, n int) ([]*model.Product, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: catalog size must not be negative, got %d", model.ErrInvalidArgument, n)
	}
	products := make([]*model.Product, 0, n)
	for i := 0; i < n; i++ {
		product, err := s.generator.Generate()
		if err != nil {
			return nil, err
		}
		if err := s.storage.SaveProduct(ctx, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	s.logger.Info("catalog populated", slog.Int("products", len(products)))
	return products, nil
}

// Load returns the stored catalog, populating it with n products when storage is empty
func (s *Service) Load(ctx context.Context, n int) ([]*model.Product, error) {
	products, err := s.storage.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return s.Populate(ctx, n)
	}

	s.generator.Reserve(products[len(products)-1].ID())
	s.logger.Info("catalog loaded from storage", slog.Int("products", len(products)))
	return products, nil
}

// Regenerate discards the stored catalog and populates a new one
func (s *Service) Regenerate(ctx context.Context, n int) ([]*model.Product, error) {
	if err := s.storage.DeleteAllProducts(ctx); err != nil {
		return nil, err
	}
	return s.Populate(ctx, n)
}

// List returns all products ordered by id
func (s *Service) List(ctx context.Context) ([]*model.Product, error) {
	return s.storage.ListProducts(ctx)
}

// Get returns the product with the given id
func (s *Service) Get(ctx context.Context, id model.ProductID) (*model.Product, error) {
	return s.storage.GetProduct(ctx, id)
}

// Random picks a product uniformly from the catalog
func (s *Service) Random(ctx context.Context) (*model.Product, error) {
	products, err := s.storage.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, model.ErrCatalogEmpty
	}
	return products[s.random.Intn(len(products))], nil
}
