package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// ContactsMenu builds the contact book menu.
func ContactsMenu(svc *service.Contacts) *Menu {
	return &Menu{
		Title: "Contact Book",
		Items: []Item{
			{Label: "Add Contact", Run: addContact(svc)},
			{Label: "List Contacts", Run: listContacts(svc)},
			{Label: "Delete Contact", Run: deleteContact(svc)},
			{Label: "Search Contact", Run: searchContact(svc)},
			{Label: "Update Contact", Run: updateContact(svc)},
		},
	}
}

func addContact(svc *service.Contacts) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter name: ", "Name is required.")
		if err != nil {
			return err
		}
		phone, err := p.Line("Enter phone: ")
		if err != nil {
			return err
		}
		email, err := p.Line("Enter email: ")
		if err != nil {
			return err
		}
		switch err := svc.Add(ctx, name, phone, email); {
		case errors.Is(err, errs.ErrAlreadyExists):
			p.Println("Contact with this name already exists.")
		case err != nil:
			return err
		default:
			p.Println("Contact added!")
		}
		return nil
	}
}

func listContacts(svc *service.Contacts) Handler {
	return func(ctx context.Context, p *Prompter) error {
		contacts, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			p.Println("No contacts found.")
			return nil
		}
		p.Println("\nContacts:")
		for i, c := range contacts {
			p.Printf("%d. Name: %s, Phone: %s, Email: %s\n", i+1, c.Name, c.Phone, c.Email)
		}
		return nil
	}
}

func deleteContact(svc *service.Contacts) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter name of contact to delete: ", "Name is required.")
		if err != nil {
			return err
		}
		deleted, err := svc.Delete(ctx, name)
		if err != nil {
			return err
		}
		if deleted {
			p.Println("Contact deleted!")
		} else {
			p.Println("Contact not found.")
		}
		return nil
	}
}

func searchContact(svc *service.Contacts) Handler {
	return func(ctx context.Context, p *Prompter) error {
		fragment, err := p.String("Enter name to search (partial match): ", "Name is required.")
		if err != nil {
			return err
		}
		contacts, err := svc.Search(ctx, fragment)
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			p.Println("No contacts found.")
			return nil
		}
		p.Println("\nFound contacts:")
		for i, c := range contacts {
			p.Printf("%d. Name: %s, Phone: %s, Email: %s\n", i+1, c.Name, c.Phone, c.Email)
		}
		return nil
	}
}

func updateContact(svc *service.Contacts) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter name of contact to update: ", "Name is required.")
		if err != nil {
			return err
		}
		contact, err := svc.Get(ctx, name)
		if errors.Is(err, errs.ErrNotFound) {
			p.Println("Contact not found.")
			return nil
		}
		if err != nil {
			return err
		}
		phone, err := p.Optional(fmt.Sprintf("Enter new phone [%s]: ", contact.Phone))
		if err != nil {
			return err
		}
		if phone == "" {
			phone = contact.Phone
		}
		email, err := p.Optional(fmt.Sprintf("Enter new email [%s]: ", contact.Email))
		if err != nil {
			return err
		}
		if email == "" {
			email = contact.Email
		}
		if err := svc.Update(ctx, name, phone, email); err != nil {
			return err
		}
		p.Println("Contact updated!")
		return nil
	}
}
