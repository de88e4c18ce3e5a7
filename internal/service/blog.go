package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/repository"
)

// Blog manages authors, posts, and embedded comments.
type Blog struct {
	authors repository.AuthorRepository
	posts   repository.PostRepository
	now     func() time.Time
}

// NewBlog constructs the blog service.
func NewBlog(authors repository.AuthorRepository, posts repository.PostRepository) *Blog {
	return &Blog{authors: authors, posts: posts, now: time.Now}
}

// AddAuthor registers an author.
func (s *Blog) AddAuthor(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty author name", errs.ErrInvalid)
	}
	return s.authors.Add(ctx, name)
}

// AddPost stores a post linked to an existing author by id.
func (s *Blog) AddPost(ctx context.Context, title, content, authorName string) error {
	author, err := s.authors.GetByName(ctx, authorName)
	if err != nil {
		return err
	}
	return s.posts.Add(ctx, &model.Post{
		Title:     title,
		Content:   content,
		AuthorID:  author.ID,
		CreatedAt: s.now(),
		Comments:  []model.Comment{},
	})
}

// Posts lists all posts with author info joined in.
func (s *Blog) Posts(ctx context.Context) ([]model.PostWithAuthor, error) {
	return s.posts.ListWithAuthors(ctx)
}

// AddComment appends a comment to the titled post.
func (s *Blog) AddComment(ctx context.Context, title, commenter, text string) error {
	post, err := s.posts.GetByTitle(ctx, title)
	if err != nil {
		return err
	}
	return s.posts.AddComment(ctx, post.ID, model.Comment{
		Commenter: commenter,
		Text:      text,
		CreatedAt: s.now(),
	})
}

// Comments returns the titled post together with its comments in insertion order.
func (s *Blog) Comments(ctx context.Context, title string) (*model.Post, error) {
	return s.posts.GetByTitle(ctx, title)
}
