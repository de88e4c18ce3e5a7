package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// SocialMenu builds the social network menu.
func SocialMenu(svc *service.Social) *Menu {
	return &Menu{
		Title: "Social Network",
		Items: []Item{
			{Label: "Register User", Run: registerSocialUser(svc)},
			{Label: "Send Friend Request", Run: sendFriendRequest(svc)},
			{Label: "Accept Friend Request", Run: acceptFriendRequest(svc)},
			{Label: "Post Status", Run: postStatus(svc)},
			{Label: "View Feed", Run: viewFeed(svc)},
		},
	}
}

func registerSocialUser(svc *service.Social) Handler {
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

func sendFriendRequest(svc *service.Social) Handler {
	return func(ctx context.Context, p *Prompter) error {
		from, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		to, err := p.String("Send request to: ", "Username required.")
		if err != nil {
			return err
		}
		switch err := svc.SendRequest(ctx, from, to); {
		case errors.Is(err, errs.ErrSelfFriend):
			p.Println("Cannot friend yourself.")
		case errors.Is(err, errs.ErrNotFound):
			p.Println("User not found.")
		case errors.Is(err, errs.ErrAlreadyExists):
			p.Println("Request already sent or you are already friends.")
		case err != nil:
			return err
		default:
			p.Println("Friend request sent!")
		}
		return nil
	}
}

func acceptFriendRequest(svc *service.Social) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		requests, err := svc.PendingRequests(ctx, username)
		if errors.Is(err, errs.ErrNotFound) {
			p.Println("User not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(requests) == 0 {
			p.Println("No pending requests.")
			return nil
		}
		p.Println("Pending requests: " + strings.Join(requests, ", "))
		from, err := p.String("Accept request from: ", "Username required.")
		if err != nil {
			return err
		}
		switch err := svc.Accept(ctx, username, from); {
		case errors.Is(err, errs.ErrNoSuchRequest):
			p.Println("No such request.")
		case errors.Is(err, errs.ErrNotFound):
			p.Println("User not found.")
		case err != nil:
			return err
		default:
			p.Println("Friend request accepted!")
		}
		return nil
	}
}

func postStatus(svc *service.Social) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		text, err := p.String("Enter status: ", "Status text required.")
		if err != nil {
			return err
		}
		switch err := svc.PostStatus(ctx, username, text); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("User not found.")
		case err != nil:
			return err
		default:
			p.Println("Status posted!")
		}
		return nil
	}
}

func viewFeed(svc *service.Social) Handler {
	return func(ctx context.Context, p *Prompter) error {
		username, err := p.String("Your username: ", "Username required.")
		if err != nil {
			return err
		}
		feed, err := svc.Feed(ctx, username)
		if errors.Is(err, errs.ErrNotFound) {
			p.Println("User not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(feed) == 0 {
			p.Println("No statuses in your feed.")
			return nil
		}
		p.Println("\n--- Your Feed ---")
		for i, s := range feed {
			p.Printf("%d. [%s] %s: %s\n", i+1, s.Date.Format(timeLayout), s.Username, s.Text)
		}
		return nil
	}
}
