package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

type fakeTableRepo struct {
	tables map[int]*model.Table
	addIn  int
}

var _ repository.TableRepository = (*fakeTableRepo)(nil)

func (f *fakeTableRepo) Add(_ context.Context, number int) error {
	f.addIn = number
	return nil
}

func (f *fakeTableRepo) GetByNumber(_ context.Context, number int) (*model.Table, error) {
	if tb, ok := f.tables[number]; ok {
		return tb, nil
	}
	return nil, errs.ErrNotFound
}

type fakeReservationRepo struct {
	addIn  *model.Reservation
	addErr error

	cancelOut bool
}

var _ repository.ReservationRepository = (*fakeReservationRepo)(nil)

func (f *fakeReservationRepo) Add(_ context.Context, r *model.Reservation) error {
	f.addIn = r
	return f.addErr
}

func (f *fakeReservationRepo) List(_ context.Context) ([]model.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ string, _ int, _, _ string) (bool, error) {
	return f.cancelOut, nil
}

func TestReservations_AddTable_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tables := &fakeTableRepo{tables: map[int]*model.Table{}}
	s := NewReservations(tables, &fakeReservationRepo{})

	if err := s.AddTable(ctx, 0); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
	if tables.addIn != 0 {
		t.Fatalf("repo should not be called on invalid number")
	}

	if err := s.AddTable(ctx, 4); err != nil {
		t.Fatalf("add table: %v", err)
	}
	if tables.addIn != 4 {
		t.Fatalf("want table 4 added, got %d", tables.addIn)
	}
}

func TestReservations_Reserve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tables := &fakeTableRepo{tables: map[int]*model.Table{4: {Number: 4}}}

	t.Run("unknown table", func(t *testing.T) {
		reservations := &fakeReservationRepo{}
		s := NewReservations(tables, reservations)
		if _, err := s.Reserve(ctx, "ann", 9, "2025-06-01", "19:00"); !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		if reservations.addIn != nil {
			t.Fatalf("reservation must not be stored for unknown table")
		}
	})

	t.Run("slot taken", func(t *testing.T) {
		reservations := &fakeReservationRepo{addErr: errs.ErrSlotTaken}
		s := NewReservations(tables, reservations)
		if _, err := s.Reserve(ctx, "ann", 4, "2025-06-01", "19:00"); !errors.Is(err, errs.ErrSlotTaken) {
			t.Fatalf("want ErrSlotTaken, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		reservations := &fakeReservationRepo{}
		s := NewReservations(tables, reservations)
		res, err := s.Reserve(ctx, "ann", 4, "2025-06-01", "19:00")
		if err != nil {
			t.Fatalf("reserve: %v", err)
		}
		if res.Customer != "ann" || res.TableNumber != 4 || res.Date != "2025-06-01" || res.Time != "19:00" {
			t.Fatalf("reservation fields: %+v", res)
		}
		if _, err := uuid.FromString(res.Code); err != nil {
			t.Fatalf("confirmation code %q is not a uuid: %v", res.Code, err)
		}
		if reservations.addIn != res {
			t.Fatalf("stored reservation differs from the returned one")
		}
	})
}

func TestReservations_Cancel_ReportsMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReservations(&fakeTableRepo{tables: map[int]*model.Table{}}, &fakeReservationRepo{cancelOut: false})

	cancelled, err := s.Cancel(ctx, "ann", 4, "2025-06-01", "19:00")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled {
		t.Fatalf("want cancelled=false for missing reservation")
	}

	if _, err := s.Cancel(ctx, "ann", -1, "2025-06-01", "19:00"); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
}
