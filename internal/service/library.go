package service

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Library manages books and the borrow/return state machine.
type Library struct {
	books repository.BookRepository
}

// NewLibrary constructs the library service.
func NewLibrary(books repository.BookRepository) *Library {
	return &Library{books: books}
}

// AddBook stores a book, initially available.
func (s *Library) AddBook(ctx context.Context, title, author string) error {
	return s.books.Add(ctx, title, author)
}

// FindBook looks a book up by exact title.
func (s *Library) FindBook(ctx context.Context, title string) (*model.Book, error) {
	return s.books.GetByTitle(ctx, title)
}

// Books lists all books.
func (s *Library) Books(ctx context.Context) ([]model.Book, error) {
	return s.books.List(ctx)
}

// Borrow marks the book borrowed; rejected when it is already out.
func (s *Library) Borrow(ctx context.Context, title string) error {
	return s.books.Borrow(ctx, title)
}

// Return marks the book available; rejected when it is not out.
func (s *Library) Return(ctx context.Context, title string) error {
	return s.books.Return(ctx, title)
}
