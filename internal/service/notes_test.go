package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

type fakeNoteUserRepo struct {
	registerIn  string
	registerErr error

	users map[string]*model.NoteUser
}

var _ repository.NoteUserRepository = (*fakeNoteUserRepo)(nil)

func (f *fakeNoteUserRepo) Register(_ context.Context, username string) error {
	f.registerIn = username
	return f.registerErr
}

func (f *fakeNoteUserRepo) GetByUsername(_ context.Context, username string) (*model.NoteUser, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

type fakeNoteRepo struct {
	addInOwner string
	addInText  string

	getOwnedErr error

	shareInOwner string
	shareInText  string
	shareInWith  string
	shareErr     error
}

var _ repository.NoteRepository = (*fakeNoteRepo)(nil)

func (f *fakeNoteRepo) Add(_ context.Context, owner, text string) error {
	f.addInOwner, f.addInText = owner, text
	return nil
}

func (f *fakeNoteRepo) ListFor(_ context.Context, _ string) ([]model.Note, error) { return nil, nil }

func (f *fakeNoteRepo) Search(_ context.Context, _, _ string) ([]model.Note, error) {
	return nil, nil
}

func (f *fakeNoteRepo) GetOwned(_ context.Context, owner, text string) (*model.Note, error) {
	if f.getOwnedErr != nil {
		return nil, f.getOwnedErr
	}
	return &model.Note{Owner: owner, Text: text}, nil
}

func (f *fakeNoteRepo) Share(_ context.Context, owner, text, shareWith string) error {
	f.shareInOwner, f.shareInText, f.shareInWith = owner, text, shareWith
	return f.shareErr
}

func TestNotes_AddNote_RequiresExistingUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &fakeNoteUserRepo{users: map[string]*model.NoteUser{"ann": {Username: "ann"}}}
	notes := &fakeNoteRepo{}
	s := NewNotes(users, notes)

	if err := s.AddNote(ctx, "ghost", "hi"); !errors.Is(err, errs.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
	if notes.addInOwner != "" {
		t.Fatalf("note must not be stored for unknown user")
	}

	if err := s.AddNote(ctx, "ann", "hi"); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if notes.addInOwner != "ann" || notes.addInText != "hi" {
		t.Fatalf("add args: %q %q", notes.addInOwner, notes.addInText)
	}
}

func TestNotes_Share(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &fakeNoteUserRepo{users: map[string]*model.NoteUser{
		"ann": {Username: "ann"},
		"bob": {Username: "bob"},
	}}

	t.Run("note missing", func(t *testing.T) {
		notes := &fakeNoteRepo{getOwnedErr: errs.ErrNotFound}
		s := NewNotes(users, notes)
		err := s.Share(ctx, "ann", "hi", "bob")
		if !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		if errors.Is(err, errs.ErrUserNotFound) {
			t.Fatalf("note absence must not look like a missing user")
		}
	})

	t.Run("target missing", func(t *testing.T) {
		notes := &fakeNoteRepo{}
		s := NewNotes(users, notes)
		if err := s.Share(ctx, "ann", "hi", "ghost"); !errors.Is(err, errs.ErrUserNotFound) {
			t.Fatalf("want ErrUserNotFound, got %v", err)
		}
		if notes.shareInWith != "" {
			t.Fatalf("share must not reach the repo for unknown target")
		}
	})

	t.Run("duplicate share", func(t *testing.T) {
		notes := &fakeNoteRepo{shareErr: errs.ErrAlreadyExists}
		s := NewNotes(users, notes)
		if err := s.Share(ctx, "ann", "hi", "bob"); !errors.Is(err, errs.ErrAlreadyExists) {
			t.Fatalf("want ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		notes := &fakeNoteRepo{}
		s := NewNotes(users, notes)
		if err := s.Share(ctx, "ann", "hi", "bob"); err != nil {
			t.Fatalf("share: %v", err)
		}
		if notes.shareInOwner != "ann" || notes.shareInText != "hi" || notes.shareInWith != "bob" {
			t.Fatalf("share args: %q %q %q", notes.shareInOwner, notes.shareInText, notes.shareInWith)
		}
	})
}

func TestNotes_MyNotes_RequiresExistingUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &fakeNoteUserRepo{users: map[string]*model.NoteUser{}}
	s := NewNotes(users, &fakeNoteRepo{})

	if _, err := s.MyNotes(ctx, "ghost"); !errors.Is(err, errs.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}
