package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// BookRepo implements BookRepository on the books collection.
type BookRepo struct {
	cl    *storage.Client
	books collection[model.Book]
}

// NewBookRepo constructs a book repository.
func NewBookRepo(cl *storage.Client) *BookRepo {
	return &BookRepo{cl: cl, books: newCollection[model.Book](cl, "books")}
}

// EnsureIndexes creates the title index used by lookups.
func (r *BookRepo) EnsureIndexes(ctx context.Context) error {
	return r.cl.EnsureIndex(ctx, "books", mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
}

func (r *BookRepo) Add(ctx context.Context, title, author string) error {
	return r.books.insert(ctx, model.Book{Title: title, Author: author, Borrowed: false})
}

func (r *BookRepo) GetByTitle(ctx context.Context, title string) (*model.Book, error) {
	return r.books.findOne(ctx, bson.M{"title": title})
}

func (r *BookRepo) List(ctx context.Context) ([]model.Book, error) {
	return r.books.find(ctx, bson.M{})
}

// Borrow flips the flag with the availability check folded into the filter,
// so two sessions cannot both borrow the same copy.
func (r *BookRepo) Borrow(ctx context.Context, title string) error {
	return r.setBorrowed(ctx, title, true, errs.ErrAlreadyBorrowed)
}

// Return is the inverse of Borrow with the same atomicity.
func (r *BookRepo) Return(ctx context.Context, title string) error {
	return r.setBorrowed(ctx, title, false, errs.ErrNotBorrowed)
}

func (r *BookRepo) setBorrowed(ctx context.Context, title string, borrowed bool, conflict error) error {
	matched, err := r.books.updateOne(ctx,
		bson.M{"title": title, "borrowed": !borrowed},
		bson.M{"$set": bson.M{"borrowed": borrowed}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		if _, err := r.GetByTitle(ctx, title); err != nil {
			return err
		}
		return conflict
	}
	return nil
}
