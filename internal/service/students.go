package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Students manages students and their grades.
type Students struct {
	students repository.StudentRepository
	grades   repository.GradeRepository
}

// NewStudents constructs the student-management service.
func NewStudents(students repository.StudentRepository, grades repository.GradeRepository) *Students {
	return &Students{students: students, grades: grades}
}

// AddStudent registers a student.
func (s *Students) AddStudent(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty student name", errs.ErrInvalid)
	}
	return s.students.Add(ctx, name)
}

// List returns all students.
func (s *Students) List(ctx context.Context) ([]model.Student, error) {
	return s.students.List(ctx)
}

// AssignGrade records a grade for an existing student, referenced by id.
func (s *Students) AssignGrade(ctx context.Context, studentName, subject, value string) error {
	student, err := s.students.GetByName(ctx, studentName)
	if err != nil {
		return err
	}
	return s.grades.Add(ctx, &model.Grade{
		StudentID: student.ID,
		Subject:   subject,
		Value:     value,
	})
}

// GradesFor returns the student's record and all grades referencing it.
func (s *Students) GradesFor(ctx context.Context, studentName string) (*model.Student, []model.Grade, error) {
	student, err := s.students.GetByName(ctx, studentName)
	if err != nil {
		return nil, nil, err
	}
	grades, err := s.grades.ListForStudent(ctx, student.ID)
	if err != nil {
		return nil, nil, err
	}
	return student, grades, nil
}
