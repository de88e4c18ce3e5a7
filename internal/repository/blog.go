package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pac-cee/mongocli/internal/model"
)

// AuthorRepository provides access to blog authors.
type AuthorRepository interface {
	// Add inserts a new author.
	Add(ctx context.Context, name string) error
	// GetByName loads an author, ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*model.Author, error)
}

// PostRepository provides access to blog posts and their embedded comments.
type PostRepository interface {
	// Add inserts a new post.
	Add(ctx context.Context, post *model.Post) error
	// GetByTitle loads a post, ErrNotFound if absent.
	GetByTitle(ctx context.Context, title string) (*model.Post, error)
	// ListWithAuthors returns all posts with their author joined in.
	ListWithAuthors(ctx context.Context) ([]model.PostWithAuthor, error)
	// AddComment appends a comment to the post's embedded list.
	AddComment(ctx context.Context, postID primitive.ObjectID, c model.Comment) error
}
