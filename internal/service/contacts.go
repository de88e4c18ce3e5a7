package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Contacts manages the address book.
type Contacts struct {
	contacts repository.ContactRepository
}

// NewContacts constructs the contacts service.
func NewContacts(contacts repository.ContactRepository) *Contacts {
	return &Contacts{contacts: contacts}
}

// Add stores a contact; the unique name index rejects duplicates.
func (s *Contacts) Add(ctx context.Context, name, phone, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalid)
	}
	return s.contacts.Add(ctx, &model.Contact{Name: name, Phone: phone, Email: email})
}

// Get loads one contact by exact name.
func (s *Contacts) Get(ctx context.Context, name string) (*model.Contact, error) {
	return s.contacts.GetByName(ctx, name)
}

// List returns all contacts.
func (s *Contacts) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}

// Search matches names containing the fragment, case-insensitively.
func (s *Contacts) Search(ctx context.Context, fragment string) ([]model.Contact, error) {
	return s.contacts.Search(ctx, fragment)
}

// Update replaces phone and email on the named contact.
func (s *Contacts) Update(ctx context.Context, name, phone, email string) error {
	return s.contacts.Update(ctx, name, phone, email)
}

// Delete removes the named contact, reporting whether one existed.
func (s *Contacts) Delete(ctx context.Context, name string) (bool, error) {
	return s.contacts.Delete(ctx, name)
}
