// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrInvalid indicates input that fails validation; no storage call was made.
	ErrInvalid = errors.New("invalid input")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound distinguishes a missing user from a missing primary record
	// in operations that reference both.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., name taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInsufficientFunds indicates an account balance too low for the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAlreadyBorrowed indicates a borrow attempt on a book that is out.
	ErrAlreadyBorrowed = errors.New("already borrowed")

	// ErrNotBorrowed indicates a return attempt on a book that is not out.
	ErrNotBorrowed = errors.New("not borrowed")

	// ErrStockBelowZero indicates a stock adjustment that would drive stock negative.
	ErrStockBelowZero = errors.New("stock below zero")

	// ErrSlotTaken indicates a reservation conflict on a (table, date, time) slot.
	ErrSlotTaken = errors.New("slot taken")

	// ErrNoSuchRequest indicates a friend-request accept with no matching pending request.
	ErrNoSuchRequest = errors.New("no such request")

	// ErrSelfFriend indicates a friend request sent to oneself.
	ErrSelfFriend = errors.New("cannot friend yourself")
)
