package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// ProductRepo implements ProductRepository on the products collection.
type ProductRepo struct {
	products collection[model.Product]
}

// NewProductRepo constructs a product repository.
func NewProductRepo(cl *storage.Client) *ProductRepo {
	return &ProductRepo{products: newCollection[model.Product](cl, "products")}
}

func (r *ProductRepo) Add(ctx context.Context, name string, stock int) error {
	return r.products.insert(ctx, model.Product{Name: name, Stock: stock})
}

func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return r.products.find(ctx, bson.M{})
}

func (r *ProductRepo) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	return r.products.find(ctx, bson.M{"stock": bson.M{"$lt": threshold}})
}

// Adjust applies delta as a single conditional $inc: the floor check lives in
// the filter, so a concurrent adjustment cannot slip the stock below zero.
func (r *ProductRepo) Adjust(ctx context.Context, name string, delta int) error {
	matched, err := r.products.updateOne(ctx,
		stockAdjustFilter(name, delta),
		bson.M{"$inc": bson.M{"stock": delta}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		if _, err := r.products.findOne(ctx, bson.M{"name": name}); err != nil {
			return err
		}
		return errs.ErrStockBelowZero
	}
	return nil
}

// stockAdjustFilter only matches while current stock can absorb the delta.
func stockAdjustFilter(name string, delta int) bson.M {
	if delta >= 0 {
		return bson.M{"name": name}
	}
	return bson.M{"name": name, "stock": bson.M{"$gte": -delta}}
}
