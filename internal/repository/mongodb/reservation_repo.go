package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// TableRepo implements TableRepository on the tables collection.
type TableRepo struct {
	tables collection[model.Table]
}

// NewTableRepo constructs a table repository.
func NewTableRepo(cl *storage.Client) *TableRepo {
	return &TableRepo{tables: newCollection[model.Table](cl, "tables")}
}

func (r *TableRepo) Add(ctx context.Context, number int) error {
	return r.tables.insert(ctx, model.Table{Number: number})
}

func (r *TableRepo) GetByNumber(ctx context.Context, number int) (*model.Table, error) {
	return r.tables.findOne(ctx, bson.M{"number": number})
}

// ReservationRepo implements ReservationRepository on the reservations
// collection. The slot triple is guarded by a unique index, not a pre-check,
// so two sessions cannot book the same slot.
type ReservationRepo struct {
	cl           *storage.Client
	reservations collection[model.Reservation]
}

// NewReservationRepo constructs a reservation repository.
func NewReservationRepo(cl *storage.Client) *ReservationRepo {
	return &ReservationRepo{cl: cl, reservations: newCollection[model.Reservation](cl, "reservations")}
}

// EnsureIndexes creates the unique (tableNumber, date, time) index.
func (r *ReservationRepo) EnsureIndexes(ctx context.Context) error {
	return r.cl.EnsureIndex(ctx, "reservations", mongo.IndexModel{
		Keys: bson.D{
			{Key: "tableNumber", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (r *ReservationRepo) Add(ctx context.Context, res *model.Reservation) error {
	err := r.reservations.insert(ctx, res)
	if errors.Is(err, errs.ErrAlreadyExists) {
		return errs.ErrSlotTaken
	}
	return err
}

func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	return r.reservations.find(ctx, bson.M{})
}

func (r *ReservationRepo) Cancel(ctx context.Context, customer string, tableNumber int, date, timeSlot string) (bool, error) {
	deleted, err := r.reservations.deleteOne(ctx, bson.M{
		"customer":    customer,
		"tableNumber": tableNumber,
		"date":        date,
		"time":        timeSlot,
	})
	return deleted > 0, err
}
