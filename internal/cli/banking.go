package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// BankingMenu builds the banking app menu.
func BankingMenu(svc *service.Banking) *Menu {
	return &Menu{
		Title: "Banking App",
		Items: []Item{
			{Label: "Create Account", Run: createAccount(svc)},
			{Label: "Deposit", Run: deposit(svc)},
			{Label: "Withdraw", Run: withdraw(svc)},
			{Label: "Transfer", Run: transfer(svc)},
			{Label: "Show Accounts", Run: showAccounts(svc)},
		},
	}
}

func createAccount(svc *service.Banking) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter account holder name: ", "Name is required.")
		if err != nil {
			return err
		}
		if err := svc.CreateAccount(ctx, name); err != nil {
			return err
		}
		p.Println("Account created!")
		return nil
	}
}

func deposit(svc *service.Banking) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter account holder name: ", "Name is required.")
		if err != nil {
			return err
		}
		amount, err := p.PositiveFloat("Enter amount to deposit: ", "Invalid amount.")
		if err != nil {
			return err
		}
		switch err := svc.Deposit(ctx, name, amount); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Account not found.")
		case err != nil:
			return err
		default:
			p.Println("Deposit successful!")
		}
		return nil
	}
}

func withdraw(svc *service.Banking) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter account holder name: ", "Name is required.")
		if err != nil {
			return err
		}
		amount, err := p.PositiveFloat("Enter amount to withdraw: ", "Invalid amount.")
		if err != nil {
			return err
		}
		switch err := svc.Withdraw(ctx, name, amount); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Account not found.")
		case errors.Is(err, errs.ErrInsufficientFunds):
			p.Println("Insufficient funds.")
		case err != nil:
			return err
		default:
			p.Println("Withdrawal successful!")
		}
		return nil
	}
}

func transfer(svc *service.Banking) Handler {
	return func(ctx context.Context, p *Prompter) error {
		sender, err := p.String("Enter sender name: ", "Name is required.")
		if err != nil {
			return err
		}
		receiver, err := p.String("Enter receiver name: ", "Name is required.")
		if err != nil {
			return err
		}
		amount, err := p.PositiveFloat("Enter amount to transfer: ", "Invalid amount.")
		if err != nil {
			return err
		}
		switch err := svc.Transfer(ctx, sender, receiver, amount); {
		case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrInsufficientFunds), errors.Is(err, errs.ErrInvalid):
			p.Printf("Transfer failed: %v.\n", err)
		case err != nil:
			return err
		default:
			p.Println("Transfer successful!")
		}
		return nil
	}
}

func showAccounts(svc *service.Banking) Handler {
	return func(ctx context.Context, p *Prompter) error {
		accounts, err := svc.Accounts(ctx)
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			p.Println("No accounts found.")
			return nil
		}
		p.Println("\nAccounts:")
		for i, a := range accounts {
			p.Printf("%d. Name: %s, Balance: $%.2f\n", i+1, a.Name, a.Balance)
		}
		return nil
	}
}
