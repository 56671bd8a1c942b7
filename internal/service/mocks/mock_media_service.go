package mocks

import (
	"context"
	"io"
	"time"

	"feedapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Media, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaService) URL(ctx context.Context, media *model.Media, expiry time.Duration) (string, error) {
	args := m.Called(ctx, media, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) Open(ctx context.Context, media *model.Media) (io.ReadCloser, error) {
	args := m.Called(ctx, media)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockMediaService) List(ctx context.Context) ([]*model.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Media), args.Error(1)
}

func (m *MockMediaService) Get(ctx context.Context, id string) (*model.Media, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Media), args.Bool(1), args.Error(2)
}

func (m *MockMediaService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
