package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// TaskRepo implements TaskRepository on the tasks collection.
type TaskRepo struct {
	tasks collection[model.Task]
}

// NewTaskRepo constructs a task repository.
func NewTaskRepo(cl *storage.Client) *TaskRepo {
	return &TaskRepo{tasks: newCollection[model.Task](cl, "tasks")}
}

func (r *TaskRepo) Add(ctx context.Context, title, status string) error {
	return r.tasks.insert(ctx, model.Task{Title: title, Status: status})
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	return r.tasks.find(ctx, bson.M{})
}

func (r *TaskRepo) ListByStatus(ctx context.Context, status string) ([]model.Task, error) {
	return r.tasks.find(ctx, bson.M{"status": status})
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, title, status string) error {
	matched, err := r.tasks.updateOne(ctx,
		bson.M{"title": title},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, title string) (bool, error) {
	deleted, err := r.tasks.deleteOne(ctx, bson.M{"title": title})
	return deleted > 0, err
}
