// Package mongodb contains MongoDB implementations of repository interfaces.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/storage"
)

// boundFn derives the per-round-trip deadline for one storage call.
type boundFn = func(ctx context.Context) (context.Context, context.CancelFunc)

// collection is a typed accessor over one mongo collection. Repositories embed
// it for the uniform lookup/insert/update/delete operations and fall back to
// the raw handle for pipelines. Every operation runs under its own storage
// deadline derived from the client.
type collection[T any] struct {
	c     *mongo.Collection
	bound boundFn
}

func newCollection[T any](cl *storage.Client, name string) collection[T] {
	return collection[T]{c: cl.Collection(name), bound: cl.OpContext}
}

// findOne returns the first match, ErrNotFound when nothing matches.
func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	var out T
	err := c.c.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", c.c.Name(), err)
	}
	return &out, nil
}

// find returns all matches; order is insertion order unless opts sort.
func (c collection[T]) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	cur, err := c.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.c.Name(), err)
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode from %s: %w", c.c.Name(), err)
	}
	return out, nil
}

// insert appends a document; unique index violations map to ErrAlreadyExists.
func (c collection[T]) insert(ctx context.Context, doc any) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	_, err := c.c.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert into %s: %w", c.c.Name(), err)
	}
	return nil
}

// updateOne applies the update to the first match and reports the matched count
// so callers can detect "not found".
func (c collection[T]) updateOne(ctx context.Context, filter, update any) (int64, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	res, err := c.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", c.c.Name(), err)
	}
	return res.MatchedCount, nil
}

// deleteOne removes the first match and reports the deleted count.
func (c collection[T]) deleteOne(ctx context.Context, filter any) (int64, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	res, err := c.c.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", c.c.Name(), err)
	}
	return res.DeletedCount, nil
}

// aggregate runs a pipeline and decodes rows into R.
func aggregate[R any](ctx context.Context, c *mongo.Collection, bound boundFn, pipeline mongo.Pipeline) ([]R, error) {
	ctx, cancel := bound(ctx)
	defer cancel()
	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate on %s: %w", c.Name(), err)
	}
	var out []R
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode aggregation from %s: %w", c.Name(), err)
	}
	return out, nil
}

// containsFilter matches documents whose field contains the fragment,
// case-insensitively. The fragment is a literal substring, never a pattern,
// so regex metacharacters in user input cannot break the query.
func containsFilter(field, fragment string) bson.M {
	return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(fragment), "$options": "i"}}
}
