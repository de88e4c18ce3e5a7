package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// BookRepository provides access to library books.
type BookRepository interface {
	// Add inserts a book, initially available.
	Add(ctx context.Context, title, author string) error
	// GetByTitle loads a book, ErrNotFound if absent.
	GetByTitle(ctx context.Context, title string) (*model.Book, error)
	// List returns all books in insertion order.
	List(ctx context.Context) ([]model.Book, error)
	// Borrow atomically marks the book borrowed. ErrNotFound if absent,
	// ErrAlreadyBorrowed if it is already out.
	Borrow(ctx context.Context, title string) error
	// Return atomically marks the book available. ErrNotFound if absent,
	// ErrNotBorrowed if it is not out.
	Return(ctx context.Context, title string) error
}
