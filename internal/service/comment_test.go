package service

import (
	"context"
	"testing"
	"time"

	"feedapi/internal/docstore/memory"
	"feedapi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memory.New())

	t.Run("requires postId", func(t *testing.T) {
		_, err := svc.Create(ctx, &model.Comment{UserID: "u1", Comment: "hi"})
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("assigns id and timestamp", func(t *testing.T) {
		created, err := svc.Create(ctx, &model.Comment{
			PostID:   "p1",
			UserID:   "u1",
			Username: "alice",
			Comment:  "first",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		got, found, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, created, got)
	})
}

func TestCommentService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memory.New())

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, postID := range []string{"p1", "p2", "p1"} {
		_, err := svc.Create(ctx, &model.Comment{
			PostID:    postID,
			UserID:    "u1",
			Comment:   "c",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	t.Run("filtered by post", func(t *testing.T) {
		comments, err := svc.List(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, comments, 2)
		for _, c := range comments {
			assert.Equal(t, "p1", c.PostID)
		}
		assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt))
	})

	t.Run("all comments newest first", func(t *testing.T) {
		comments, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, base.Add(2*time.Second), comments[0].CreatedAt)
	})
}

func TestCommentService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memory.New())

	created, err := svc.Create(ctx, &model.Comment{
		PostID:   "p1",
		UserID:   "u1",
		Username: "alice",
		Comment:  "typo",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "fixed", updated.Comment)
	assert.Equal(t, created.PostID, updated.PostID)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, "nonexistent", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memory.New())

	created, err := svc.Create(ctx, &model.Comment{PostID: "p1", Comment: "bye"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestCommentService_OrphanCommentAllowed(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	posts := NewPostService(store)
	comments := NewCommentService(store)

	post, err := posts.Create(ctx, newPost("u1", "short-lived"))
	require.NoError(t, err)
	require.NoError(t, posts.Delete(ctx, post.ID))

	// the post is gone but its id still accepts comments
	c, err := comments.Create(ctx, &model.Comment{PostID: post.ID, Comment: "late"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
}
