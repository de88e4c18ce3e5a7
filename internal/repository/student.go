package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pac-cee/mongocli/internal/model"
)

// StudentRepository provides access to students.
type StudentRepository interface {
	// Add inserts a student.
	Add(ctx context.Context, name string) error
	// GetByName loads a student, ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*model.Student, error)
	// List returns all students in insertion order.
	List(ctx context.Context) ([]model.Student, error)
}

// GradeRepository provides access to grades referencing students by id.
type GradeRepository interface {
	// Add inserts a grade.
	Add(ctx context.Context, g *model.Grade) error
	// ListForStudent returns all grades recorded for the student.
	ListForStudent(ctx context.Context, studentID primitive.ObjectID) ([]model.Grade, error)
}
