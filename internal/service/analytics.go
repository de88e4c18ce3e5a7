package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// topCustomersLimit caps the top-customers report.
const topCustomersLimit = 5

// Analytics records orders and serves the sales reports.
type Analytics struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewAnalytics constructs the analytics service.
func NewAnalytics(orders repository.OrderRepository) *Analytics {
	return &Analytics{orders: orders, now: time.Now}
}

// AddOrder records a purchase with a positive quantity.
func (s *Analytics) AddOrder(ctx context.Context, customer, product string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", errs.ErrInvalid)
	}
	return s.orders.Add(ctx, &model.Order{
		Customer: customer,
		Product:  product,
		Quantity: quantity,
		Date:     s.now(),
	})
}

// Orders lists all orders.
func (s *Analytics) Orders(ctx context.Context) ([]model.Order, error) {
	return s.orders.List(ctx)
}

// SalesByProduct sums quantities per product, best sellers first.
func (s *Analytics) SalesByProduct(ctx context.Context) ([]model.ProductSales, error) {
	return s.orders.SalesByProduct(ctx)
}

// TopCustomers sums quantities per customer, top five only.
func (s *Analytics) TopCustomers(ctx context.Context) ([]model.CustomerTotal, error) {
	return s.orders.TopCustomers(ctx, topCustomersLimit)
}
