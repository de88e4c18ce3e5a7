package service

import (
	"context"
	"fmt"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// lowStockThreshold marks products as low-stock below this count.
const lowStockThreshold = 5

// Inventory manages products and stock levels.
type Inventory struct {
	products repository.ProductRepository
}

// NewInventory constructs the inventory service.
func NewInventory(products repository.ProductRepository) *Inventory {
	return &Inventory{products: products}
}

// AddProduct stores a product with a non-negative initial stock.
func (s *Inventory) AddProduct(ctx context.Context, name string, stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", errs.ErrInvalid)
	}
	return s.products.Add(ctx, name, stock)
}

// Products lists all products.
func (s *Inventory) Products(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

// LowStock reports products below the threshold.
func (s *Inventory) LowStock(ctx context.Context) ([]model.Product, error) {
	return s.products.LowStock(ctx, lowStockThreshold)
}

// AdjustStock applies a signed delta, never driving stock negative.
func (s *Inventory) AdjustStock(ctx context.Context, name string, delta int) error {
	return s.products.Adjust(ctx, name, delta)
}
