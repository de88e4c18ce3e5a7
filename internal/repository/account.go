// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// AccountRepository provides access to bank accounts keyed by holder name.
type AccountRepository interface {
	// Create inserts a new account with zero balance.
	Create(ctx context.Context, name string) error
	// GetByName loads an account, ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*model.Account, error)
	// List returns all accounts in insertion order.
	List(ctx context.Context) ([]model.Account, error)
	// Deposit atomically increments the balance. ErrNotFound if no account matches.
	Deposit(ctx context.Context, name string, amount float64) error
	// Withdraw atomically decrements the balance only if funds suffice.
	// ErrNotFound if the account is absent, ErrInsufficientFunds otherwise.
	Withdraw(ctx context.Context, name string, amount float64) error
	// Transfer debits sender and credits receiver as one atomic unit.
	// Either both balances change or neither does.
	Transfer(ctx context.Context, sender, receiver string, amount float64) error
}
