package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Tasks manages the to-do list.
type Tasks struct {
	tasks repository.TaskRepository
}

// NewTasks constructs the task service.
func NewTasks(tasks repository.TaskRepository) *Tasks {
	return &Tasks{tasks: tasks}
}

// Add stores a task. An empty status defaults to pending; anything outside
// the allowed set is rejected.
func (s *Tasks) Add(ctx context.Context, title, status string) error {
	status, err := normalizeStatus(status, true)
	if err != nil {
		return err
	}
	return s.tasks.Add(ctx, title, status)
}

// List returns all tasks.
func (s *Tasks) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

// ListByStatus returns tasks matching one allowed status.
func (s *Tasks) ListByStatus(ctx context.Context, status string) ([]model.Task, error) {
	status, err := normalizeStatus(status, false)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByStatus(ctx, status)
}

// UpdateStatus moves the titled task to a new allowed status.
func (s *Tasks) UpdateStatus(ctx context.Context, title, status string) error {
	status, err := normalizeStatus(status, false)
	if err != nil {
		return err
	}
	return s.tasks.UpdateStatus(ctx, title, status)
}

// Delete removes the titled task, reporting whether one existed.
func (s *Tasks) Delete(ctx context.Context, title string) (bool, error) {
	return s.tasks.Delete(ctx, title)
}

// normalizeStatus lowercases and checks membership in the allowed set.
// With defaultPending, an empty value becomes "pending".
func normalizeStatus(status string, defaultPending bool) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" && defaultPending {
		return model.TaskPending, nil
	}
	for _, allowed := range model.TaskStatuses {
		if status == allowed {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: invalid status %q", errs.ErrInvalid, status)
}
