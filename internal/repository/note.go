package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// NoteUserRepository provides access to registered notes-app users.
type NoteUserRepository interface {
	// Register inserts a user. ErrAlreadyExists if the username is taken.
	Register(ctx context.Context, username string) error
	// GetByUsername loads a user, ErrNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*model.NoteUser, error)
}

// NoteRepository provides access to notes, owned or shared.
type NoteRepository interface {
	// Add inserts a note owned by the given user.
	Add(ctx context.Context, owner, text string) error
	// ListFor returns notes the user owns or that are shared with them.
	ListFor(ctx context.Context, username string) ([]model.Note, error)
	// Search returns the user's owned or shared notes whose text contains the
	// keyword, case-insensitively.
	Search(ctx context.Context, username, keyword string) ([]model.Note, error)
	// GetOwned loads the note with the exact text owned by the user,
	// ErrNotFound if absent.
	GetOwned(ctx context.Context, owner, text string) (*model.Note, error)
	// Share adds the username to the note's shared list without duplicating.
	// ErrAlreadyExists if the note was already shared with that user.
	Share(ctx context.Context, owner, text, shareWith string) error
}
