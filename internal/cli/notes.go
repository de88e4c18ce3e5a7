package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// NotesMenu builds the notes app menu.
func NotesMenu(svc *service.Notes) *Menu {
	return &Menu{
		Title: "Notes App",
		Items: []Item{
			{Label: "Register User", Run: registerNoteUser(svc)},
			{Label: "Add Note", Run: addNote(svc)},
			{Label: "My Notes", Run: myNotes(svc)},
			{Label: "Share Note", Run: shareNote(svc)},
			{Label: "Search Notes", Run: searchNotes(svc)},
		},
	}
}

func registerNoteUser(svc *service.Notes) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Enter username: ", "Username required.")
		if err != nil {
			return err
		}
		switch err := svc.Register(ctx, username); {
		case errors.Is(err, errs.ErrAlreadyExists):
			p.Println("Username already taken.")
		case err != nil:
			return err
		default:
			p.Println("User registered!")
		}
		return nil
	}
}

func addNote(svc *service.Notes) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		text, err := p.String("Enter note: ", "Note text required.")
		if err != nil {
			return err
		}
		switch err := svc.AddNote(ctx, username, text); {
		case errors.Is(err, errs.ErrUserNotFound):
			p.Println("User not found.")
		case err != nil:
			return err
		default:
			p.Println("Note added!")
		}
		return nil
	}
}

func myNotes(svc *service.Notes) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		notes, err := svc.MyNotes(ctx, username)
		if errors.Is(err, errs.ErrUserNotFound) {
			p.Println("User not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			p.Println("No notes found.")
			return nil
		}
		p.Println("\nYour Notes:")
		for i, n := range notes {
			suffix := ""
			if n.Owner != username {
				suffix = " (shared)"
			}
			p.Printf("%d. %s%s\n", i+1, n.Text, suffix)
		}
		return nil
	}
}

func shareNote(svc *service.Notes) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		text, err := p.String("Note text to share: ", "Note text required.")
		if err != nil {
			return err
		}
		target, err := p.String("Share with username: ", "Username required.")
		if err != nil {
			return err
		}
		switch err := svc.Share(ctx, username, text, target); {
		case errors.Is(err, errs.ErrUserNotFound):
			p.Println("User to share with not found.")
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Note not found.")
		case errors.Is(err, errs.ErrAlreadyExists):
			p.Println("Already shared with this user.")
		case err != nil:
			return err
		default:
			p.Println("Note shared!")
		}
		return nil
	}
}

func searchNotes(svc *service.Notes) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		keyword, err := p.String("Enter search keyword: ", "Keyword required.")
		if err != nil {
			return err
		}
		notes, err := svc.Search(ctx, username, keyword)
		if errors.Is(err, errs.ErrUserNotFound) {
			p.Println("User not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			p.Println("No notes found.")
			return nil
		}
		p.Println("\nSearch Results:")
		for i, n := range notes {
			p.Printf("%d. %s\n", i+1, n.Text)
		}
		return nil
	}
}
