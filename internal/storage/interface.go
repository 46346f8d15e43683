package storage

import (
	"context"

	"github.com/mcoot/shopsim/internal/model"
)

// Storage defines the interface for catalog persistence
type Storage interface {
	SaveProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error)
	// ListProducts returns every stored product ordered by id
	ListProducts(ctx context.Context) ([]*model.Product, error)
	DeleteAllProducts(ctx context.Context) error
}
