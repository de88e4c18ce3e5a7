package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// OrderRepository provides access to orders and the analytics aggregations.
type OrderRepository interface {
	// Add inserts an order.
	Add(ctx context.Context, o *model.Order) error
	// List returns all orders in insertion order.
	List(ctx context.Context) ([]model.Order, error)
	// SalesByProduct groups orders by product, summing quantity, best sellers first.
	SalesByProduct(ctx context.Context) ([]model.ProductSales, error)
	// TopCustomers groups orders by customer, summing quantity, top spenders
	// first, capped at limit.
	TopCustomers(ctx context.Context, limit int) ([]model.CustomerTotal, error)
}
