package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// StudentRepo implements StudentRepository on the students collection.
type StudentRepo struct {
	students collection[model.Student]
}

// NewStudentRepo constructs a student repository.
func NewStudentRepo(cl *storage.Client) *StudentRepo {
	return &StudentRepo{students: newCollection[model.Student](cl, "students")}
}

func (r *StudentRepo) Add(ctx context.Context, name string) error {
	return r.students.insert(ctx, model.Student{Name: name})
}

func (r *StudentRepo) GetByName(ctx context.Context, name string) (*model.Student, error) {
	return r.students.findOne(ctx, bson.M{"name": name})
}

func (r *StudentRepo) List(ctx context.Context) ([]model.Student, error) {
	return r.students.find(ctx, bson.M{})
}

// GradeRepo implements GradeRepository on the grades collection.
type GradeRepo struct {
	grades collection[model.Grade]
}

// NewGradeRepo constructs a grade repository.
func NewGradeRepo(cl *storage.Client) *GradeRepo {
	return &GradeRepo{grades: newCollection[model.Grade](cl, "grades")}
}

func (r *GradeRepo) Add(ctx context.Context, g *model.Grade) error {
	return r.grades.insert(ctx, g)
}

func (r *GradeRepo) ListForStudent(ctx context.Context, studentID primitive.ObjectID) ([]model.Grade, error) {
	return r.grades.find(ctx, bson.M{"studentId": studentID})
}
