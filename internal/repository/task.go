package repository

import (
	"context"

	"github.com/pac-cee/mongocli/internal/model"
)

// TaskRepository provides access to tasks.
type TaskRepository interface {
	// Add inserts a task.
	Add(ctx context.Context, title, status string) error
	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]model.Task, error)
	// ListByStatus returns tasks with the given status in insertion order.
	ListByStatus(ctx context.Context, status string) ([]model.Task, error)
	// UpdateStatus sets the status of the titled task. ErrNotFound if absent.
	UpdateStatus(ctx context.Context, title, status string) error
	// Delete removes the titled task and reports whether one was removed.
	Delete(ctx context.Context, title string) (bool, error)
}
