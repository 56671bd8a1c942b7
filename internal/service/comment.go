package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedapi/internal/codec"
	"feedapi/internal/docstore"
	"feedapi/internal/model"
)

const commentCollection = "comments"

// CommentService defines the use cases for post comments. The postId
// reference is taken at face value; commenting on a deleted post is
// allowed.
type CommentService interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	Get(ctx context.Context, id string) (*model.Comment, bool, error)

	// List returns comments newest-first, optionally only those under
	// postID.
	List(ctx context.Context, postID string) ([]*model.Comment, error)

	// Update overwrites the comment text only.
	Update(ctx context.Context, id, text string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}

type commentService struct {
	store docstore.Store
}

func NewCommentService(store docstore.Store) CommentService {
	return &commentService{store: store}
}

func (s *commentService) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if comment.PostID == "" {
		return nil, fmt.Errorf("%w: postId", ErrMissingFields)
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	id, err := s.store.Insert(ctx, commentCollection, codec.EncodeComment(comment))
	if err != nil {
		return nil, err
	}
	comment.ID = id
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id string) (*model.Comment, bool, error) {
	if id == "" {
		return nil, false, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, commentCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return codec.DecodeComment(id, doc), true, nil
}

func (s *commentService) List(ctx context.Context, postID string) ([]*model.Comment, error) {
	q := docstore.Query{
		OrderBy:   "createdAt",
		Direction: docstore.Descending,
	}
	if postID != "" {
		q.Filter = map[string]docstore.Value{"postId": docstore.String(postID)}
	}

	recs, err := s.store.Query(ctx, commentCollection, q)
	if err != nil {
		return nil, err
	}
	comments := make([]*model.Comment, 0, len(recs))
	for _, rec := range recs {
		comments = append(comments, codec.DecodeComment(rec.ID, rec.Doc))
	}
	return comments, nil
}

func (s *commentService) Update(ctx context.Context, id, text string) (*model.Comment, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, commentCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	comment := codec.DecodeComment(id, doc)
	comment.Comment = text

	if err := s.store.Replace(ctx, commentCollection, id, codec.EncodeComment(comment)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	err := s.store.Delete(ctx, commentCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
