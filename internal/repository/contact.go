package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// ContactRepository provides access to address-book entries.
type ContactRepository interface {
	// Add inserts a contact. ErrAlreadyExists if the name is taken.
	Add(ctx context.Context, c *model.Contact) error
	// GetByName loads a contact, ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*model.Contact, error)
	// List returns all contacts in insertion order.
	List(ctx context.Context) ([]model.Contact, error)
	// Search returns contacts whose name contains the fragment, case-insensitively.
	Search(ctx context.Context, fragment string) ([]model.Contact, error)
	// Update sets phone and email on the named contact. ErrNotFound if absent.
	Update(ctx context.Context, name, phone, email string) error
	// Delete removes the named contact and reports whether one was removed.
	Delete(ctx context.Context, name string) (bool, error)
}
