package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// TableRepository provides access to restaurant tables.
type TableRepository interface {
	// Add inserts a table.
	Add(ctx context.Context, number int) error
	// GetByNumber loads a table, ErrNotFound if absent.
	GetByNumber(ctx context.Context, number int) (*model.Table, error)
}

// ReservationRepository provides access to reservations. The
// (tableNumber, date, time) triple is unique, enforced by the storage layer.
type ReservationRepository interface {
	// Add inserts a reservation. ErrSlotTaken if the slot is already booked.
	Add(ctx context.Context, r *model.Reservation) error
	// List returns all reservations in insertion order.
	List(ctx context.Context) ([]model.Reservation, error)
	// Cancel removes the matching reservation and reports whether one was removed.
	Cancel(ctx context.Context, customer string, tableNumber int, date, timeSlot string) (bool, error)
}
