package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// ReservationsMenu builds the restaurant reservation menu.
func ReservationsMenu(svc *service.Reservations) *Menu {
	return &Menu{
		Title: "Restaurant Reservations",
		Items: []Item{
			{Label: "Add Table", Run: addTable(svc)},
			{Label: "Make Reservation", Run: makeReservation(svc)},
			{Label: "List Reservations", Run: listReservations(svc)},
			{Label: "Cancel Reservation", Run: cancelReservation(svc)},
		},
	}
}

func addTable(svc *service.Reservations) Handler {
	return func(ctx context.Context, p *Prompter) error {
		number, err := p.PositiveInt("Enter table number: ", "Invalid table number.")
		if err != nil {
			return err
		}
		switch err := svc.AddTable(ctx, number); {
		case errors.Is(err, errs.ErrAlreadyExists):
			p.Println("Table already exists.")
		case err != nil:
			return err
		default:
			p.Println("Table added!")
		}
		return nil
	}
}

func makeReservation(svc *service.Reservations) Handler {
	return func(ctx context.Context, p *Prompter) error {
		customer, err := p.String("Enter customer name: ", "Name is required.")
		if err != nil {
			return err
		}
		number, err := p.PositiveInt("Enter table number: ", "Invalid table number.")
		if err != nil {
			return err
		}
		date, err := p.String("Enter date (YYYY-MM-DD): ", "Date is required.")
		if err != nil {
			return err
		}
		at, err := p.String("Enter time (HH:MM): ", "Time is required.")
		if err != nil {
			return err
		}
		res, err := svc.Reserve(ctx, customer, number, date, at)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Table not found.")
		case errors.Is(err, errs.ErrSlotTaken):
			p.Println("Table already reserved for this slot.")
		case err != nil:
			return err
		default:
			p.Println("Reservation made!")
			p.Printf("Confirmation code: %s\n", res.Code)
		}
		return nil
	}
}

func listReservations(svc *service.Reservations) Handler {
	return func(ctx context.Context, p *Prompter) error {
		reservations, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(reservations) == 0 {
			p.Println("No reservations found.")
			return nil
		}
		p.Println("\nReservations:")
		for i, r := range reservations {
			p.Printf("%d. Customer: %s, Table: %d, Date: %s, Time: %s\n",
				i+1, r.Customer, r.TableNumber, r.Date, r.Time)
		}
		return nil
	}
}

func cancelReservation(svc *service.Reservations) Handler {
	return func(ctx context.Context, p *Prompter) error {
		customer, err := p.String("Enter customer name: ", "Name is required.")
		if err != nil {
			return err
		}
		number, err := p.PositiveInt("Enter table number: ", "Invalid table number.")
		if err != nil {
			return err
		}
		date, err := p.String("Enter date (YYYY-MM-DD): ", "Date is required.")
		if err != nil {
			return err
		}
		at, err := p.String("Enter time (HH:MM): ", "Time is required.")
		if err != nil {
			return err
		}
		cancelled, err := svc.Cancel(ctx, customer, number, date, at)
		if err != nil {
			return err
		}
		if cancelled {
			p.Println("Reservation cancelled!")
		} else {
			p.Println("Reservation not found.")
		}
		return nil
	}
}
