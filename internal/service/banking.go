// Package service holds per-domain business rules on top of repositories.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Banking manages accounts and transfers.
type Banking struct {
	accounts repository.AccountRepository
}

// NewBanking constructs the banking service.
func NewBanking(accounts repository.AccountRepository) *Banking {
	return &Banking{accounts: accounts}
}

// CreateAccount opens an account with zero balance.
func (s *Banking) CreateAccount(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalid)
	}
	return s.accounts.Create(ctx, name)
}

// Deposit adds a positive amount to the named account.
func (s *Banking) Deposit(ctx context.Context, name string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalid)
	}
	return s.accounts.Deposit(ctx, name, amount)
}

// Withdraw removes a positive amount, never below zero balance.
func (s *Banking) Withdraw(ctx context.Context, name string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalid)
	}
	return s.accounts.Withdraw(ctx, name, amount)
}

// Transfer moves a positive amount between two accounts atomically.
func (s *Banking) Transfer(ctx context.Context, sender, receiver string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalid)
	}
	if sender == receiver {
		return fmt.Errorf("%w: sender and receiver are the same account", errs.ErrInvalid)
	}
	return s.accounts.Transfer(ctx, sender, receiver, amount)
}

// Accounts lists all accounts.
func (s *Banking) Accounts(ctx context.Context) ([]model.Account, error) {
	return s.accounts.List(ctx)
}
