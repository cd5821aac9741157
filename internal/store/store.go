package store

import (
	"context"
	"errors"

	"github.com/Zachkp/portfolio/internal/model"
)

var ErrNotFound = errors.New("not found")

// CommentStore persists guestbook comments.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) (string, error)
	GetComment(ctx context.Context, id string) (model.Comment, error)
	// ListComments returns comments newest first. A negative limit returns all.
	ListComments(ctx context.Context, limit int) ([]model.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	DeleteAllComments(ctx context.Context) (int64, error)
}

type Store interface {
	CommentStore
	Close() error
}
