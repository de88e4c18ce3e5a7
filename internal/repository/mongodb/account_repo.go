package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// AccountRepo implements AccountRepository on the accounts collection.
type AccountRepo struct {
	cl       *storage.Client
	accounts collection[model.Account]
}

// NewAccountRepo constructs an account repository.
func NewAccountRepo(cl *storage.Client) *AccountRepo {
	return &AccountRepo{cl: cl, accounts: newCollection[model.Account](cl, "accounts")}
}

func (r *AccountRepo) Create(ctx context.Context, name string) error {
	return r.accounts.insert(ctx, model.Account{Name: name, Balance: 0})
}

func (r *AccountRepo) GetByName(ctx context.Context, name string) (*model.Account, error) {
	return r.accounts.findOne(ctx, bson.M{"name": name})
}

func (r *AccountRepo) List(ctx context.Context) ([]model.Account, error) {
	return r.accounts.find(ctx, bson.M{})
}

func (r *AccountRepo) Deposit(ctx context.Context, name string, amount float64) error {
	matched, err := r.accounts.updateOne(ctx, bson.M{"name": name}, bson.M{"$inc": bson.M{"balance": amount}})
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Withdraw folds the funds check into the update filter so the balance can
// never be driven negative by concurrent withdrawals.
func (r *AccountRepo) Withdraw(ctx context.Context, name string, amount float64) error {
	matched, err := r.accounts.updateOne(ctx,
		debitFilter(name, amount),
		bson.M{"$inc": bson.M{"balance": -amount}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		if _, err := r.GetByName(ctx, name); err != nil {
			return err
		}
		return errs.ErrInsufficientFunds
	}
	return nil
}

// Transfer runs both balance mutations in one server transaction: either both
// persist or neither does. Preconditions are verified inside the transaction
// before any write is issued.
func (r *AccountRepo) Transfer(ctx context.Context, sender, receiver string, amount float64) error {
	return r.cl.InTransaction(ctx, func(ctx context.Context) error {
		snd, err := r.GetByName(ctx, sender)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return fmt.Errorf("sender %q: %w", sender, errs.ErrNotFound)
			}
			return err
		}
		if _, err := r.GetByName(ctx, receiver); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return fmt.Errorf("receiver %q: %w", receiver, errs.ErrNotFound)
			}
			return err
		}
		if snd.Balance < amount {
			return errs.ErrInsufficientFunds
		}

		matched, err := r.accounts.updateOne(ctx,
			debitFilter(sender, amount),
			bson.M{"$inc": bson.M{"balance": -amount}},
		)
		if err != nil {
			return err
		}
		if matched == 0 {
			return errs.ErrInsufficientFunds
		}
		if _, err := r.accounts.updateOne(ctx,
			bson.M{"name": receiver},
			bson.M{"$inc": bson.M{"balance": amount}},
		); err != nil {
			return err
		}
		return nil
	})
}

// debitFilter matches the account only while its balance covers the amount.
func debitFilter(name string, amount float64) bson.M {
	return bson.M{"name": name, "balance": bson.M{"$gte": amount}}
}
