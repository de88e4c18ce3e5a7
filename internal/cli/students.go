package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// StudentsMenu builds the student management menu.
func StudentsMenu(svc *service.Students) *Menu {
	return &Menu{
		Title: "Student Management",
		Items: []Item{
			{Label: "Add Student", Run: addStudent(svc)},
			{Label: "Assign Grade", Run: assignGrade(svc)},
			{Label: "List Students", Run: listStudents(svc)},
			{Label: "View Grades for Student", Run: viewGrades(svc)},
		},
	}
}

func addStudent(svc *service.Students) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter student name: ", "Student name required.")
		if err != nil {
			return err
		}
		if err := svc.AddStudent(ctx, name); err != nil {
			return err
		}
		p.Println("Student added!")
		return nil
	}
}

func assignGrade(svc *service.Students) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter student name: ", "Student name required.")
		if err != nil {
			return err
		}
		subject, err := p.String("Enter subject: ", "Subject required.")
		if err != nil {
			return err
		}
		grade, err := p.String("Enter grade: ", "Grade required.")
		if err != nil {
			return err
		}
		switch err := svc.AssignGrade(ctx, name, subject, grade); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Student not found.")
		case err != nil:
			return err
		default:
			p.Println("Grade assigned!")
		}
		return nil
	}
}

func listStudents(svc *service.Students) Handler {
	return func(ctx context.Context, p *Prompter) error {
		students, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(students) == 0 {
			p.Println("No students found.")
			return nil
		}
		p.Println("\nStudents:")
		for i, s := range students {
			p.Printf("%d. Name: %s\n", i+1, s.Name)
		}
		return nil
	}
}

func viewGrades(svc *service.Students) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter student name: ", "Student name required.")
		if err != nil {
			return err
		}
		student, grades, err := svc.GradesFor(ctx, name)
		if errors.Is(err, errs.ErrNotFound) {
			p.Println("Student not found.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(grades) == 0 {
			p.Println("No grades found for this student.")
			return nil
		}
		p.Printf("\nGrades for %s:\n", student.Name)
		for i, g := range grades {
			p.Printf("%d. Subject: %s, Grade: %s\n", i+1, g.Subject, g.Value)
		}
		return nil
	}
}
