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

func TestTopicService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewTopicService(memory.New())

	created, err := svc.Create(ctx, &model.Topic{
		UserID:              "u1",
		Progress:            20,
		TopicOne:            "go",
		TopicOneDescription: "interfaces",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 20, got.Progress)
	assert.Equal(t, "go", got.TopicOne)
	assert.Equal(t, "interfaces", got.TopicOneDescription)
}

func TestTopicService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewTopicService(memory.New())

	created, err := svc.Create(ctx, &model.Topic{UserID: "u1", Progress: 10})
	require.NoError(t, err)

	t.Run("overwrites progress and topic pairs", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, UpdateTopicInput{
			Progress:            40,
			TopicOne:            "testing",
			TopicOneDescription: "mocks",
			TopicTwo:            "http",
		})
		require.NoError(t, err)
		assert.Equal(t, 40, updated.Progress)
		assert.Equal(t, "testing", updated.TopicOne)
		assert.Equal(t, "http", updated.TopicTwo)
		assert.Equal(t, created.UserID, updated.UserID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("progress is not clamped", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, UpdateTopicInput{Progress: 140})
		require.NoError(t, err)
		assert.Equal(t, 140, updated.Progress)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "nonexistent", UpdateTopicInput{Progress: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTopicService_ListByUser(t *testing.T) {
	ctx := context.Background()
	svc := NewTopicService(memory.New())

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, user := range []string{"u1", "u2", "u1"} {
		_, err := svc.Create(ctx, &model.Topic{
			UserID:    user,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	topics, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.True(t, topics[0].CreatedAt.After(topics[1].CreatedAt))
}

func TestTopicService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewTopicService(memory.New())

	created, err := svc.Create(ctx, &model.Topic{UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}
