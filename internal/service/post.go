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

const postCollection = "posts"

// UpdatePostInput carries the only post fields an update may touch.
// Author, likes, id and creation time are not updatable.
type UpdatePostInput struct {
	Description string `json:"description"`
	UserImage   string `json:"userImage"`
}

// PostService defines the use cases for feed posts.
type PostService interface {
	// Create validates required fields, defaults the creation time and
	// like set, and returns the post with its store-assigned id.
	Create(ctx context.Context, post *model.Post) (*model.Post, error)

	// Get returns the post with the given id. Absence is not an error:
	// found is false and the post nil when no such document exists.
	Get(ctx context.Context, id string) (*model.Post, bool, error)

	// List returns posts newest-first, optionally only those by userID.
	List(ctx context.Context, userID string) ([]*model.Post, error)

	// Update overwrites the post's description and image and returns
	// the merged post. Fails with ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, in UpdatePostInput) (*model.Post, error)

	// Delete removes the post. Fails with ErrNotFound for an unknown
	// id. Comments referencing the post are left in place.
	Delete(ctx context.Context, id string) error

	// ToggleLike flips userID's membership in the post's like set and
	// returns the updated post. The read and the write are two store
	// round-trips with no version guard: concurrent toggles on the
	// same post can lose one of the updates.
	ToggleLike(ctx context.Context, postID, userID string) (*model.Post, error)
}

type postService struct {
	store docstore.Store
}

func NewPostService(store docstore.Store) PostService {
	return &postService{store: store}
}

func (s *postService) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	if post.UserID == "" || post.Username == "" || post.Description == "" {
		return nil, fmt.Errorf("%w: userId, username and description", ErrMissingFields)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}

	id, err := s.store.Insert(ctx, postCollection, codec.EncodePost(post))
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, bool, error) {
	if id == "" {
		return nil, false, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, postCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return codec.DecodePost(id, doc), true, nil
}

func (s *postService) List(ctx context.Context, userID string) ([]*model.Post, error) {
	q := docstore.Query{
		OrderBy:   "createdAt",
		Direction: docstore.Descending,
	}
	if userID != "" {
		q.Filter = map[string]docstore.Value{"userId": docstore.String(userID)}
	}

	recs, err := s.store.Query(ctx, postCollection, q)
	if err != nil {
		return nil, err
	}
	posts := make([]*model.Post, 0, len(recs))
	for _, rec := range recs {
		posts = append(posts, codec.DecodePost(rec.ID, rec.Doc))
	}
	return posts, nil
}

func (s *postService) Update(ctx context.Context, id string, in UpdatePostInput) (*model.Post, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, postCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	post := codec.DecodePost(id, doc)
	post.Description = in.Description
	post.UserImage = in.UserImage

	if err := s.store.Replace(ctx, postCollection, id, codec.EncodePost(post)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	err := s.store.Delete(ctx, postCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *postService) ToggleLike(ctx context.Context, postID, userID string) (*model.Post, error) {
	if postID == "" || userID == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, postCollection, postID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	post := codec.DecodePost(postID, doc)
	if post.Liked(userID) {
		likes := make([]string, 0, len(post.Likes)-1)
		for _, id := range post.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, userID)
	}

	if err := s.store.Replace(ctx, postCollection, postID, codec.EncodePost(post)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}
