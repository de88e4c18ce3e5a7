package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

type fakeBookRepo struct {
	borrowIn  string
	borrowErr error

	returnIn  string
	returnErr error
}

var _ repository.BookRepository = (*fakeBookRepo)(nil)

func (f *fakeBookRepo) Add(_ context.Context, _, _ string) error { return nil }

func (f *fakeBookRepo) GetByTitle(_ context.Context, _ string) (*model.Book, error) {
	return nil, errs.ErrNotFound
}

func (f *fakeBookRepo) List(_ context.Context) ([]model.Book, error) { return nil, nil }

func (f *fakeBookRepo) Borrow(_ context.Context, title string) error {
	f.borrowIn = title
	return f.borrowErr
}

func (f *fakeBookRepo) Return(_ context.Context, title string) error {
	f.returnIn = title
	return f.returnErr
}

func TestLibrary_Borrow_PassesThroughConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeBookRepo{borrowErr: errs.ErrAlreadyBorrowed}
	s := NewLibrary(repo)

	if err := s.Borrow(ctx, "Dune"); !errors.Is(err, errs.ErrAlreadyBorrowed) {
		t.Fatalf("want ErrAlreadyBorrowed, got %v", err)
	}
	if repo.borrowIn != "Dune" {
		t.Fatalf("borrow title: %q", repo.borrowIn)
	}
}

func TestLibrary_Return_PassesThroughConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeBookRepo{returnErr: errs.ErrNotBorrowed}
	s := NewLibrary(repo)

	if err := s.Return(ctx, "Dune"); !errors.Is(err, errs.ErrNotBorrowed) {
		t.Fatalf("want ErrNotBorrowed, got %v", err)
	}
	if repo.returnIn != "Dune" {
		t.Fatalf("return title: %q", repo.returnIn)
	}
}
