package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// feedLimit caps the number of statuses in a feed.
const feedLimit = 10

// Social manages the friend graph and status feed.
type Social struct {
	users    repository.SocialUserRepository
	statuses repository.StatusRepository
	now      func() time.Time
}

// NewSocial constructs the social-network service.
func NewSocial(users repository.SocialUserRepository, statuses repository.StatusRepository) *Social {
	return &Social{users: users, statuses: statuses, now: time.Now}
}

// Register creates a user with empty friend and request lists.
func (s *Social) Register(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: empty username", errs.ErrInvalid)
	}
	return s.users.Register(ctx, username)
}

// SendRequest records a pending friend request on the target user. Requests
// to oneself, repeated requests, and requests to existing friends are rejected.
func (s *Social) SendRequest(ctx context.Context, from, to string) error {
	if from == to {
		return errs.ErrSelfFriend
	}
	target, err := s.users.GetByUsername(ctx, to)
	if err != nil {
		return err
	}
	if contains(target.Requests, from) || contains(target.Friends, from) {
		return errs.ErrAlreadyExists
	}
	return s.users.AddRequest(ctx, to, from)
}

// PendingRequests lists the usernames waiting for the user's acceptance.
func (s *Social) PendingRequests(ctx context.Context, username string) ([]string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.Requests, nil
}

// Accept turns a pending request into a mutual friendship, atomically.
func (s *Social) Accept(ctx context.Context, username, from string) error {
	return s.users.AcceptRequest(ctx, username, from)
}

// PostStatus stores a status update for an existing user.
func (s *Social) PostStatus(ctx context.Context, username, text string) error {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		return err
	}
	return s.statuses.Add(ctx, &model.Status{Username: username, Text: text, Date: s.now()})
}

// Feed returns the latest statuses from the user and their friends, newest first.
func (s *Social) Feed(ctx context.Context, username string) ([]model.Status, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	authors := append([]string{username}, user.Friends...)
	return s.statuses.Feed(ctx, authors, feedLimit)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
