package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// ContactRepo implements ContactRepository on the contacts collection.
// Name uniqueness is enforced by a unique index rather than a racy pre-check.
type ContactRepo struct {
	cl       *storage.Client
	contacts collection[model.Contact]
}

// NewContactRepo constructs a contact repository.
func NewContactRepo(cl *storage.Client) *ContactRepo {
	return &ContactRepo{cl: cl, contacts: newCollection[model.Contact](cl, "contacts")}
}

// EnsureIndexes creates the unique name index.
func (r *ContactRepo) EnsureIndexes(ctx context.Context) error {
	return r.cl.EnsureIndex(ctx, "contacts", mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}

func (r *ContactRepo) Add(ctx context.Context, c *model.Contact) error {
	return r.contacts.insert(ctx, c)
}

func (r *ContactRepo) GetByName(ctx context.Context, name string) (*model.Contact, error) {
	return r.contacts.findOne(ctx, bson.M{"name": name})
}

func (r *ContactRepo) List(ctx context.Context) ([]model.Contact, error) {
	return r.contacts.find(ctx, bson.M{})
}

func (r *ContactRepo) Search(ctx context.Context, fragment string) ([]model.Contact, error) {
	return r.contacts.find(ctx, containsFilter("name", fragment))
}

func (r *ContactRepo) Update(ctx context.Context, name, phone, email string) error {
	matched, err := r.contacts.updateOne(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"phone": phone, "email": email}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, name string) (bool, error) {
	deleted, err := r.contacts.deleteOne(ctx, bson.M{"name": name})
	return deleted > 0, err
}
