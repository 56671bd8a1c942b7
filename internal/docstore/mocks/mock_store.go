package mocks

import (
	"context"

	"feedapi/internal/docstore"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docstore.Document), args.Error(1)
}

func (m *MockStore) Insert(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Replace(ctx context.Context, collection, id string, doc docstore.Document) error {
	args := m.Called(ctx, collection, id, doc)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *MockStore) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error) {
	args := m.Called(ctx, collection, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docstore.Record), args.Error(1)
}
