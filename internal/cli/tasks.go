package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/service"
)

// TasksMenu builds the task manager menu.
func TasksMenu(svc *service.Tasks) *Menu {
	return &Menu{
		Title: "Task Manager",
		Items: []Item{
			{Label: "Add Task", Run: addTask(svc)},
			{Label: "List All Tasks", Run: listTasks(svc)},
			{Label: "Update Task Status", Run: updateTaskStatus(svc)},
			{Label: "Delete Task", Run: deleteTask(svc)},
			{Label: "List Tasks by Status", Run: listTasksByStatus(svc)},
		},
	}
}

func addTask(svc *service.Tasks) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter task title: ", "Title is required.")
		if err != nil {
			return err
		}
		status, err := p.Enum("Enter status (pending/done) [pending]: ",
			`Invalid status. Must be "pending" or "done".`, true, model.TaskStatuses...)
		if err != nil {
			return err
		}
		if err := svc.Add(ctx, title, status); err != nil {
			return err
		}
		p.Println("Task added!")
		return nil
	}
}

func listTasks(svc *service.Tasks) Handler {
	return func(ctx context.Context, p *Prompter) error {
		tasks, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			p.Println("No tasks found.")
			return nil
		}
		p.Println("\nTasks:")
		for i, t := range tasks {
			p.Printf("%d. Title: %s, Status: %s\n", i+1, t.Title, t.Status)
		}
		return nil
	}
}

func updateTaskStatus(svc *service.Tasks) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter task title: ", "Title is required.")
		if err != nil {
			return err
		}
		status, err := p.Enum("Enter new status (pending/done): ",
			"Invalid status.", false, model.TaskStatuses...)
		if err != nil {
			return err
		}
		switch err := svc.UpdateStatus(ctx, title, status); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Task not found.")
		case err != nil:
			return err
		default:
			p.Println("Task status updated!")
		}
		return nil
	}
}

func deleteTask(svc *service.Tasks) Handler {
	return func(ctx context.Context, p *Prompter) error {
		title, err := p.String("Enter task title to delete: ", "Title is required.")
		if err != nil {
			return err
		}
		deleted, err := svc.Delete(ctx, title)
		if err != nil {
			return err
		}
		if deleted {
			p.Println("Task deleted!")
		} else {
			p.Println("Task not found.")
		}
		return nil
	}
}

func listTasksByStatus(svc *service.Tasks) Handler {
	return func(ctx context.Context, p *Prompter) error {
		status, err := p.Enum("Enter status to filter (pending/done): ",
			"Invalid status.", false, model.TaskStatuses...)
		if err != nil {
			return err
		}
		tasks, err := svc.ListByStatus(ctx, status)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			p.Println("No tasks found with this status.")
			return nil
		}
		p.Printf("\nTasks with status '%s':\n", status)
		for i, t := range tasks {
			p.Printf("%d. Title: %s\n", i+1, t.Title)
		}
		return nil
	}
}
