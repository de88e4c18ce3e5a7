package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/service"
)

// LibraryMenu builds the library management menu.
func LibraryMenu(svc *service.Library) *Menu {
	return &Menu{
		Title: "Library Management",
		Items: []Item{
			{Label: "Add Book", Run: addBook(svc)},
			{Label: "Find Book by Title", Run: findBook(svc)},
			{Label: "List All Books", Run: listBooks(svc)},
			{Label: "Borrow Book", Run: borrowBook(svc)},
			{Label: "Return Book", Run: returnBook(svc)},
		},
	}
}

func bookStatus(b model.Book) string {
	if b.Borrowed {
		return "Borrowed"
	}
	return "Available"
}

func addBook(svc *service.Library) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter book title: ", "Title is required.")
		if err != nil {
			return err
		}
		author, err := p.String("Enter author: ", "Author is required.")
		if err != nil {
			return err
		}
		if err := svc.AddBook(ctx, title, author); err != nil {
			return err
		}
		p.Println("Book added!")
		return nil
	}
}

func findBook(svc *service.Library) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter book title to search: ", "Title is required.")
		if err != nil {
			return err
		}
		book, err := svc.FindBook(ctx, title)
		if errors.Is(err, errs.ErrNotFound) {
			p.Println("Book not found.")
			return nil
		}
		if err != nil {
			return err
		}
		p.Printf("Found: %s by %s - %s\n", book.Title, book.Author, bookStatus(*book))
		return nil
	}
}

func listBooks(svc *service.Library) Handler {
	return func(ctx context.Context, p *Prompter) error {
		books, err := svc.Books(ctx)
		if err != nil {
			return err
		}
		if len(books) == 0 {
			p.Println("No books found.")
			return nil
		}
		p.Println("\nBooks:")
		for i, b := range books {
			p.Printf("%d. Title: %s, Author: %s, Status: %s\n", i+1, b.Title, b.Author, bookStatus(b))
		}
		return nil
	}
}

func borrowBook(svc *service.Library) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter book title to borrow: ", "Title is required.")
		if err != nil {
			return err
		}
		switch err := svc.Borrow(ctx, title); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Book not found.")
		case errors.Is(err, errs.ErrAlreadyBorrowed):
			p.Println("Book is already borrowed.")
		case err != nil:
			return err
		default:
			p.Println("Book borrowed!")
		}
		return nil
	}
}

func returnBook(svc *service.Library) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter book title to return: ", "Title is required.")
		if err != nil {
			return err
		}
		switch err := svc.Return(ctx, title); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Book not found.")
		case errors.Is(err, errs.ErrNotBorrowed):
			p.Println("Book is not borrowed.")
		case err != nil:
			return err
		default:
			p.Println("Book returned!")
		}
		return nil
	}
}
