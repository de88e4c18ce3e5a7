package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// NoteUserRepo implements NoteUserRepository on the users collection.
// Username uniqueness is enforced by a unique index rather than a racy pre-check.
type NoteUserRepo struct {
	cl    *storage.Client
	users collection[model.NoteUser]
}

// NewNoteUserRepo constructs a notes-app user repository.
func NewNoteUserRepo(cl *storage.Client) *NoteUserRepo {
	return &NoteUserRepo{cl: cl, users: newCollection[model.NoteUser](cl, "users")}
}

// EnsureIndexes creates the unique username index.
func (r *NoteUserRepo) EnsureIndexes(ctx context.Context) error {
	return r.cl.EnsureIndex(ctx, "users", mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}

func (r *NoteUserRepo) Register(ctx context.Context, username string) error {
	return r.users.insert(ctx, model.NoteUser{Username: username})
}

func (r *NoteUserRepo) GetByUsername(ctx context.Context, username string) (*model.NoteUser, error) {
	return r.users.findOne(ctx, bson.M{"username": username})
}

// NoteRepo implements NoteRepository on the notes collection.
type NoteRepo struct {
	notes collection[model.Note]
}

// NewNoteRepo constructs a note repository.
func NewNoteRepo(cl *storage.Client) *NoteRepo {
	return &NoteRepo{notes: newCollection[model.Note](cl, "notes")}
}

func (r *NoteRepo) Add(ctx context.Context, owner, text string) error {
	return r.notes.insert(ctx, model.Note{Owner: owner, Text: text, SharedWith: []string{}})
}

func (r *NoteRepo) ListFor(ctx context.Context, username string) ([]model.Note, error) {
	return r.notes.find(ctx, visibleToFilter(username))
}

func (r *NoteRepo) Search(ctx context.Context, username, keyword string) ([]model.Note, error) {
	filter := bson.M{"$and": bson.A{
		visibleToFilter(username),
		containsFilter("note", keyword),
	}}
	return r.notes.find(ctx, filter)
}

func (r *NoteRepo) GetOwned(ctx context.Context, owner, text string) (*model.Note, error) {
	return r.notes.findOne(ctx, bson.M{"owner": owner, "note": text})
}

// Share uses $addToSet so sharedWith never accumulates duplicates; a no-op
// modification means the note was already shared with that user.
func (r *NoteRepo) Share(ctx context.Context, owner, text, shareWith string) error {
	ctx, cancel := r.notes.bound(ctx)
	defer cancel()
	res, err := r.notes.c.UpdateOne(ctx,
		bson.M{"owner": owner, "note": text},
		bson.M{"$addToSet": bson.M{"sharedWith": shareWith}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return errs.ErrAlreadyExists
	}
	return nil
}

// visibleToFilter matches notes the user owns or that are shared with them.
func visibleToFilter(username string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"owner": username},
		bson.M{"sharedWith": username},
	}}
}
