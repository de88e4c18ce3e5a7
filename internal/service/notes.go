package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Notes manages users, their notes, and sharing.
type Notes struct {
	users repository.NoteUserRepository
	notes repository.NoteRepository
}

// NewNotes constructs the notes service.
func NewNotes(users repository.NoteUserRepository, notes repository.NoteRepository) *Notes {
	return &Notes{users: users, notes: notes}
}

// Register creates a user; the unique username index rejects duplicates.
func (s *Notes) Register(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: empty username", errs.ErrInvalid)
	}
	return s.users.Register(ctx, username)
}

// AddNote stores a note for an existing user.
func (s *Notes) AddNote(ctx context.Context, username, text string) error {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		return asUserError(err)
	}
	return s.notes.Add(ctx, username, text)
}

// MyNotes lists notes the user owns or that are shared with them.
func (s *Notes) MyNotes(ctx context.Context, username string) ([]model.Note, error) {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		return nil, asUserError(err)
	}
	return s.notes.ListFor(ctx, username)
}

// Share grants another existing user access to one of the owner's notes.
// The shared list never holds duplicates.
func (s *Notes) Share(ctx context.Context, owner, text, shareWith string) error {
	if _, err := s.notes.GetOwned(ctx, owner, text); err != nil {
		return err
	}
	if _, err := s.users.GetByUsername(ctx, shareWith); err != nil {
		return asUserError(err)
	}
	return s.notes.Share(ctx, owner, text, shareWith)
}

// asUserError narrows a missing-record error to the user-specific sentinel so
// callers can tell "user absent" apart from "note absent".
func asUserError(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrUserNotFound
	}
	return err
}

// Search matches the user's visible notes against a keyword, case-insensitively.
func (s *Notes) Search(ctx context.Context, username, keyword string) ([]model.Note, error) {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		return nil, asUserError(err)
	}
	return s.notes.Search(ctx, username, keyword)
}
