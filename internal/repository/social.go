package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// SocialUserRepository provides access to the friend graph.
type SocialUserRepository interface {
	// Register inserts a user with empty friend and request lists.
	// ErrAlreadyExists if the username is taken.
	Register(ctx context.Context, username string) error
	// GetByUsername loads a user, ErrNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*model.SocialUser, error)
	// AddRequest records a pending friend request on the target user.
	AddRequest(ctx context.Context, to, from string) error
	// AcceptRequest removes the pending request and makes the friendship
	// mutual. Both user documents change atomically or not at all.
	// ErrNoSuchRequest if no matching request is pending.
	AcceptRequest(ctx context.Context, username, from string) error
}

// StatusRepository provides access to status updates and the feed query.
type StatusRepository interface {
	// Add inserts a status update.
	Add(ctx context.Context, s *model.Status) error
	// Feed returns statuses posted by any of the given usernames, newest
	// first, capped at limit.
	Feed(ctx context.Context, usernames []string, limit int) ([]model.Status, error)
}
