package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// OrderRepo implements OrderRepository on the orders collection.
type OrderRepo struct {
	orders collection[model.Order]
}

// NewOrderRepo constructs an order repository.
func NewOrderRepo(cl *storage.Client) *OrderRepo {
	return &OrderRepo{orders: newCollection[model.Order](cl, "orders")}
}

func (r *OrderRepo) Add(ctx context.Context, o *model.Order) error {
	return r.orders.insert(ctx, o)
}

func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	return r.orders.find(ctx, bson.M{})
}

func (r *OrderRepo) SalesByProduct(ctx context.Context) ([]model.ProductSales, error) {
	return aggregate[model.ProductSales](ctx, r.orders.c, r.orders.bound, salesByProductPipeline())
}

func (r *OrderRepo) TopCustomers(ctx context.Context, limit int) ([]model.CustomerTotal, error) {
	return aggregate[model.CustomerTotal](ctx, r.orders.c, r.orders.bound, topCustomersPipeline(limit))
}

// salesByProductPipeline sums quantity per product, best sellers first.
func salesByProductPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$product",
			"totalSold": bson.M{"$sum": "$quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"totalSold": -1}}},
	}
}

// topCustomersPipeline sums quantity per customer, top first, capped at limit.
func topCustomersPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$customer",
			"totalOrdered": bson.M{"$sum": "$quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"totalOrdered": -1}}},
		{{Key: "$limit", Value: limit}},
	}
}
