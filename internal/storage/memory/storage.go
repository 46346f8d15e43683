package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Products are held by reference, so a cart and the catalog share them.
type Storage struct {
	mu       sync.RWMutex
	products map[model.ProductID]*model.Product
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		products: make(map[model.ProductID]*model.Product),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveProduct(ctx context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID()] = product
	return nil
}

func (s *Storage) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

func (s *Storage) ListProducts(ctx context.Context) ([]*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]*model.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, product)
	}
	slices.SortFunc(products, func(a, b *model.Product) int {
		return int(a.ID() - b.ID())
	})
	return products, nil
}

func (s *Storage) DeleteAllProducts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.products)
	return nil
}
