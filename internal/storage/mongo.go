// Package storage owns the MongoDB connection shared by repositories.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Client wraps a connected mongo client scoped to one database. Every storage
// round-trip issued through it is bounded by opTimeout; time spent outside
// storage calls (such as a user typing at a prompt) is never charged against
// that deadline.
type Client struct {
	mc        *mongo.Client
	db        *mongo.Database
	opTimeout time.Duration
	log       *zap.Logger
}

// Connect dials MongoDB and verifies the connection with a bounded
// fibonacci-backoff ping so a slow-starting server does not fail the app
// immediately. opTimeout bounds each subsequent storage round-trip; zero
// means unbounded.
func Connect(ctx context.Context, uri, dbName string, opTimeout time.Duration, log *zap.Logger) (*Client, error) {
	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(200*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := mc.Ping(ctx, nil); err != nil {
			log.Warn("mongo ping failed, retrying", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("connected to MongoDB", zap.String("db", dbName))
	return &Client{mc: mc, db: mc.Database(dbName), opTimeout: opTimeout, log: log}, nil
}

// OpContext derives the deadline for one storage round-trip. The caller must
// cancel it when the call returns.
func (c *Client) OpContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

// Collection returns a handle to a named collection in the app database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// EnsureIndex creates an index on the named collection. Index creation is
// idempotent server-side.
func (c *Client) EnsureIndex(ctx context.Context, coll string, idx mongo.IndexModel) error {
	ctx, cancel := c.OpContext(ctx)
	defer cancel()
	name, err := c.db.Collection(coll).Indexes().CreateOne(ctx, idx)
	if err != nil {
		return fmt.Errorf("create index on %s: %w", coll, err)
	}
	c.log.Debug("index ensured", zap.String("collection", coll), zap.String("index", name))
	return nil
}

// InTransaction runs fn inside a server transaction. All mutations issued
// with the callback context apply atomically; the driver retries transient
// transaction errors before giving up.
func (c *Client) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := c.OpContext(ctx)
	defer cancel()
	sess, err := c.mc.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}

// Close disconnects from the server.
func (c *Client) Close(ctx context.Context) error {
	if err := c.mc.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
