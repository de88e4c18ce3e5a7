package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

type fakeSocialUserRepo struct {
	users map[string]*model.SocialUser

	addReqInTo   string
	addReqInFrom string

	acceptInUser string
	acceptInFrom string
	acceptErr    error
}

var _ repository.SocialUserRepository = (*fakeSocialUserRepo)(nil)

func (f *fakeSocialUserRepo) Register(_ context.Context, username string) error {
	if _, ok := f.users[username]; ok {
		return errs.ErrAlreadyExists
	}
	f.users[username] = &model.SocialUser{Username: username}
	return nil
}

func (f *fakeSocialUserRepo) GetByUsername(_ context.Context, username string) (*model.SocialUser, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeSocialUserRepo) AddRequest(_ context.Context, to, from string) error {
	f.addReqInTo, f.addReqInFrom = to, from
	return nil
}

func (f *fakeSocialUserRepo) AcceptRequest(_ context.Context, username, from string) error {
	f.acceptInUser, f.acceptInFrom = username, from
	return f.acceptErr
}

type fakeStatusRepo struct {
	addIn *model.Status

	feedInUsernames []string
	feedInLimit     int
	feedOut         []model.Status
}

var _ repository.StatusRepository = (*fakeStatusRepo)(nil)

func (f *fakeStatusRepo) Add(_ context.Context, s *model.Status) error {
	f.addIn = s
	return nil
}

func (f *fakeStatusRepo) Feed(_ context.Context, usernames []string, limit int) ([]model.Status, error) {
	f.feedInUsernames, f.feedInLimit = append([]string(nil), usernames...), limit
	return append([]model.Status(nil), f.feedOut...), nil
}

func TestSocial_SendRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newRepo := func() *fakeSocialUserRepo {
		return &fakeSocialUserRepo{users: map[string]*model.SocialUser{
			"ann": {Username: "ann"},
			"bob": {Username: "bob", Requests: []string{"carol"}, Friends: []string{"dave"}},
		}}
	}

	t.Run("self", func(t *testing.T) {
		s := NewSocial(newRepo(), &fakeStatusRepo{})
		if err := s.SendRequest(ctx, "ann", "ann"); !errors.Is(err, errs.ErrSelfFriend) {
			t.Fatalf("want ErrSelfFriend, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		s := NewSocial(newRepo(), &fakeStatusRepo{})
		if err := s.SendRequest(ctx, "ann", "ghost"); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("repeated request", func(t *testing.T) {
		s := NewSocial(newRepo(), &fakeStatusRepo{})
		if err := s.SendRequest(ctx, "carol", "bob"); !errors.Is(err, errs.ErrAlreadyExists) {
			t.Fatalf("want ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("already friends", func(t *testing.T) {
		s := NewSocial(newRepo(), &fakeStatusRepo{})
		if err := s.SendRequest(ctx, "dave", "bob"); !errors.Is(err, errs.ErrAlreadyExists) {
			t.Fatalf("want ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		repo := newRepo()
		s := NewSocial(repo, &fakeStatusRepo{})
		if err := s.SendRequest(ctx, "ann", "bob"); err != nil {
			t.Fatalf("send request: %v", err)
		}
		if repo.addReqInTo != "bob" || repo.addReqInFrom != "ann" {
			t.Fatalf("request recorded on %q from %q", repo.addReqInTo, repo.addReqInFrom)
		}
	})
}

func TestSocial_Accept_PassesThroughNoSuchRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeSocialUserRepo{users: map[string]*model.SocialUser{}, acceptErr: errs.ErrNoSuchRequest}
	s := NewSocial(repo, &fakeStatusRepo{})

	if err := s.Accept(ctx, "ann", "bob"); !errors.Is(err, errs.ErrNoSuchRequest) {
		t.Fatalf("want ErrNoSuchRequest, got %v", err)
	}
	if repo.acceptInUser != "ann" || repo.acceptInFrom != "bob" {
		t.Fatalf("accept args: %q %q", repo.acceptInUser, repo.acceptInFrom)
	}
}

func TestSocial_PostStatus_StampsTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &fakeSocialUserRepo{users: map[string]*model.SocialUser{"ann": {Username: "ann"}}}
	statuses := &fakeStatusRepo{}
	s := NewSocial(users, statuses)
	stamp := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return stamp }

	if err := s.PostStatus(ctx, "ghost", "hi"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown user, got %v", err)
	}
	if statuses.addIn != nil {
		t.Fatalf("status must not be stored for unknown user")
	}

	if err := s.PostStatus(ctx, "ann", "hi"); err != nil {
		t.Fatalf("post status: %v", err)
	}
	got := statuses.addIn
	if got.Username != "ann" || got.Text != "hi" || !got.Date.Equal(stamp) {
		t.Fatalf("stored status %+v", got)
	}
}

func TestSocial_Feed_IncludesSelfAndFriends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &fakeSocialUserRepo{users: map[string]*model.SocialUser{
		"ann": {Username: "ann", Friends: []string{"bob", "carol"}},
	}}
	statuses := &fakeStatusRepo{}
	s := NewSocial(users, statuses)

	if _, err := s.Feed(ctx, "ann"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	want := []string{"ann", "bob", "carol"}
	if !reflect.DeepEqual(statuses.feedInUsernames, want) {
		t.Fatalf("feed authors %v, want %v", statuses.feedInUsernames, want)
	}
	if statuses.feedInLimit != 10 {
		t.Fatalf("want feed limit 10, got %d", statuses.feedInLimit)
	}
}
