package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// timeLayout renders stored timestamps in listings.
const timeLayout = "2006-01-02 15:04"

// BlogMenu builds the blog platform menu.
func BlogMenu(svc *service.Blog) *Menu {
	return &Menu{
		Title: "Blog Platform",
		Items: []Item{
			{Label: "Add Author", Run: addAuthor(svc)},
			{Label: "Add Post", Run: addPost(svc)},
			{Label: "List Posts", Run: listPosts(svc)},
			{Label: "Add Comment to Post", Run: addComment(svc)},
			{Label: "List Comments for a Post", Run: listComments(svc)},
		},
	}
}

func addAuthor(svc *service.Blog) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter author name: ", "Author name is required.")
		if err != nil {
			return err
		}
		if err := svc.AddAuthor(ctx, name); err != nil {
			return err
		}
		p.Println("Author added!")
		return nil
	}
}

func addPost(svc *service.Blog) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter post title: ", "Title is required.")
		if err != nil {
			return err
		}
		content, err := p.Line("Enter post content: ")
		if err != nil {
			return err
		}
		authorName, err := p.String("Enter author name: ", "Author name is required.")
		if err != nil {
			return err
		}
		switch err := svc.AddPost(ctx, title, content, authorName); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Author not found.")
		case err != nil:
			return err
		default:
			p.Println("Post added!")
		}
		return nil
	}
}

func listPosts(svc *service.Blog) Handler {
	return func(ctx context.Context, p *Prompter) error {
		posts, err := svc.Posts(ctx)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			p.Println("No posts found.")
			return nil
		}
		p.Println("\nPosts:")
		for i, post := range posts {
			p.Printf("%d. Title: %s, Author: %s, Posted: %s\n",
				i+1, post.Title, post.AuthorName(), post.CreatedAt.Format(timeLayout))
		}
		return nil
	}
}

func addComment(svc *service.Blog) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter post title to comment on: ", "Title is required.")
		if err != nil {
			return err
		}
		commenter, err := p.String("Enter commenter name: ", "Name is required.")
		if err != nil {
			return err
		}
		text, err := p.Line("Enter comment: ")
		if err != nil {
			return err
		}
		switch err := svc.AddComment(ctx, title, commenter, text); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Post not found.")
		case err != nil:
			return err
		default:
			p.Println("Comment added!")
		}
		return nil
	}
}

func listComments(svc *service.Blog) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter post title to view comments: ", "Title is required.")
		if err != nil {
			return err
		}
		post, err := svc.Comments(ctx, title)
		if errors.Is(err, errs.ErrNotFound) {
			p.Println("Post not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(post.Comments) == 0 {
			p.Println("No comments for this post.")
			return nil
		}
		p.Printf("\nComments for '%s':\n", post.Title)
		for i, c := range post.Comments {
			p.Printf("%d. By: %s, %s\n   %s\n", i+1, c.Commenter, c.CreatedAt.Format(timeLayout), c.Text)
		}
		return nil
	}
}
