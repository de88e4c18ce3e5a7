package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// ProductRepository provides access to inventory items.
type ProductRepository interface {
	// Add inserts a product with its initial stock.
	Add(ctx context.Context, name string, stock int) error
	// List returns all products in insertion order.
	List(ctx context.Context) ([]model.Product, error)
	// LowStock returns products with stock strictly below the threshold.
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)
	// Adjust atomically applies delta to the product's stock, refusing to go
	// negative. ErrNotFound if the product is absent, ErrStockBelowZero if the
	// result would be negative.
	Adjust(ctx context.Context, name string, delta int) error
}
