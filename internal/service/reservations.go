package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Reservations manages tables and their bookings.
type Reservations struct {
	tables       repository.TableRepository
	reservations repository.ReservationRepository
}

// NewReservations constructs the reservation service.
func NewReservations(tables repository.TableRepository, reservations repository.ReservationRepository) *Reservations {
	return &Reservations{tables: tables, reservations: reservations}
}

// AddTable registers a table by its positive number.
func (s *Reservations) AddTable(ctx context.Context, number int) error {
	if number <= 0 {
		return fmt.Errorf("%w: table number must be positive", errs.ErrInvalid)
	}
	return s.tables.Add(ctx, number)
}

// Reserve books an existing table for one slot and returns the stored
// reservation, including its confirmation code. The slot's uniqueness is
// enforced by storage; a concurrent booking loses with ErrSlotTaken.
func (s *Reservations) Reserve(ctx context.Context, customer string, tableNumber int, date, timeSlot string) (*model.Reservation, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: table number must be positive", errs.ErrInvalid)
	}
	if _, err := s.tables.GetByNumber(ctx, tableNumber); err != nil {
		return nil, err
	}
	code, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("confirmation code: %w", err)
	}
	res := &model.Reservation{
		Customer:    customer,
		TableNumber: tableNumber,
		Date:        date,
		Time:        timeSlot,
		Code:        code.String(),
	}
	if err := s.reservations.Add(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// List returns all reservations.
func (s *Reservations) List(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.List(ctx)
}

// Cancel removes the matching reservation, reporting whether one existed.
func (s *Reservations) Cancel(ctx context.Context, customer string, tableNumber int, date, timeSlot string) (bool, error) {
	if tableNumber <= 0 {
		return false, fmt.Errorf("%w: table number must be positive", errs.ErrInvalid)
	}
	return s.reservations.Cancel(ctx, customer, tableNumber, date, timeSlot)
}
