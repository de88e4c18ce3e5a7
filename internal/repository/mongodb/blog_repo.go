package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// AuthorRepo implements AuthorRepository on the authors collection.
type AuthorRepo struct {
	authors collection[model.Author]
}

// NewAuthorRepo constructs an author repository.
func NewAuthorRepo(cl *storage.Client) *AuthorRepo {
	return &AuthorRepo{authors: newCollection[model.Author](cl, "authors")}
}

func (r *AuthorRepo) Add(ctx context.Context, name string) error {
	return r.authors.insert(ctx, model.Author{Name: name})
}

func (r *AuthorRepo) GetByName(ctx context.Context, name string) (*model.Author, error) {
	return r.authors.findOne(ctx, bson.M{"name": name})
}

// PostRepo implements PostRepository on the posts collection.
type PostRepo struct {
	posts collection[model.Post]
}

// NewPostRepo constructs a post repository.
func NewPostRepo(cl *storage.Client) *PostRepo {
	return &PostRepo{posts: newCollection[model.Post](cl, "posts")}
}

func (r *PostRepo) Add(ctx context.Context, post *model.Post) error {
	return r.posts.insert(ctx, post)
}

func (r *PostRepo) GetByTitle(ctx context.Context, title string) (*model.Post, error) {
	return r.posts.findOne(ctx, bson.M{"title": title})
}

func (r *PostRepo) ListWithAuthors(ctx context.Context) ([]model.PostWithAuthor, error) {
	return aggregate[model.PostWithAuthor](ctx, r.posts.c, r.posts.bound, postsWithAuthorsPipeline())
}

// AddComment appends to the embedded comment list, preserving insertion order.
func (r *PostRepo) AddComment(ctx context.Context, postID primitive.ObjectID, c model.Comment) error {
	_, err := r.posts.updateOne(ctx, bson.M{"_id": postID}, bson.M{"$push": bson.M{"comments": c}})
	return err
}

// postsWithAuthorsPipeline joins each post with its author record.
func postsWithAuthorsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "authors",
			"localField":   "authorId",
			"foreignField": "_id",
			"as":           "author",
		}}},
	}
}
