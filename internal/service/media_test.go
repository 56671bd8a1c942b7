package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"feedapi/internal/codec"
	"feedapi/internal/docstore"
	docMocks "feedapi/internal/docstore/mocks"
	"feedapi/internal/model"
	"feedapi/internal/storage"
	objMocks "feedapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			originalFilename: "avatar.png",
			contentType:      "image/png",
			size:             11,
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) io.Reader {
				r := strings.NewReader("png content")
				mObj.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "media/") && strings.HasSuffix(key, ".png")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "avatar.png"},
				}).Return(storage.ObjectInfo{
					Key:         "media/uuid.png",
					Size:        11,
					ContentType: "image/png",
				}, nil)

				mStore.On("Insert", ctx, "media", mock.MatchedBy(func(doc docstore.Document) bool {
					return doc["storagePath"].AsString() == "media/uuid.png" &&
						doc["filename"].AsString() != ""
				})).Return("gen-id", nil)

				return r
			},
		},
		{
			name:             "validation error - nil reader",
			originalFilename: "avatar.png",
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "storage error",
			originalFilename: "avatar.png",
			size:             5,
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) io.Reader {
				r := strings.NewReader("bytes")
				mObj.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:             "record error with successful rollback",
			originalFilename: "avatar.png",
			size:             5,
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) io.Reader {
				r := strings.NewReader("bytes")
				mObj.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mStore.On("Insert", ctx, "media", mock.Anything).
					Return("", errors.New("store fail"))
				mObj.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "record media failed: store fail",
		},
		{
			name:             "record error with failed rollback",
			originalFilename: "avatar.png",
			size:             5,
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) io.Reader {
				r := strings.NewReader("bytes")
				mObj.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mStore.On("Insert", ctx, "media", mock.Anything).
					Return("", errors.New("store fail"))
				mObj.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mObj := new(objMocks.MockStorage)
			mStore := new(docMocks.MockStore)
			svc := NewMediaService(mObj, mStore)

			r := tt.setupMocks(mObj, mStore)

			media, err := svc.Upload(ctx, r, tt.originalFilename, tt.contentType, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, media)
				assert.Equal(t, "gen-id", media.ID)
			}

			mObj.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}

func TestMediaService_Get(t *testing.T) {
	ctx := context.Background()

	stored := &model.Media{
		Filename:    "uuid.png",
		StoragePath: "media/uuid.png",
		Size:        11,
		ContentType: "image/png",
		CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *docMocks.MockStore)
		wantErr    error
		wantFound  bool
	}{
		{
			name: "happy path",
			id:   "m1",
			setupMocks: func(mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "m1").Return(codec.EncodeMedia(stored), nil)
			},
			wantFound: true,
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mStore *docMocks.MockStore) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "absent is not an error",
			id:   "missing",
			setupMocks: func(mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "missing").Return(nil, docstore.ErrNotFound)
			},
		},
		{
			name: "store error",
			id:   "m1",
			setupMocks: func(mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "m1").Return(nil, errors.New("store fail"))
			},
			wantErr: errors.New("store fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(docMocks.MockStore)
			svc := NewMediaService(nil, mStore)

			tt.setupMocks(mStore)

			media, found, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, media)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantFound, found)
				if tt.wantFound {
					assert.Equal(t, stored.StoragePath, media.StoragePath)
					assert.Equal(t, stored.CreatedAt, media.CreatedAt)
				}
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestMediaService_Delete(t *testing.T) {
	ctx := context.Background()

	storedDoc := func() docstore.Document {
		return codec.EncodeMedia(&model.Media{
			Filename:    "uuid.png",
			StoragePath: "media/uuid.png",
			CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	tests := []struct {
		name       string
		id         string
		setupMocks func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "m1",
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "m1").Return(storedDoc(), nil)
				mObj.On("Delete", ctx, "media/uuid.png").Return(nil)
				mStore.On("Delete", ctx, "media", "m1").Return(nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "missing").Return(nil, docstore.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage delete error keeps the record",
			id:   "m1",
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "m1").Return(storedDoc(), nil)
				mObj.On("Delete", ctx, "media/uuid.png").Return(errors.New("storage fail"))
			},
			wantErr: errors.New("delete storage: storage fail"),
		},
		{
			name: "record delete error",
			id:   "m1",
			setupMocks: func(mObj *objMocks.MockStorage, mStore *docMocks.MockStore) {
				mStore.On("Get", ctx, "media", "m1").Return(storedDoc(), nil)
				mObj.On("Delete", ctx, "media/uuid.png").Return(nil)
				mStore.On("Delete", ctx, "media", "m1").Return(errors.New("store fail"))
			},
			wantErr: errors.New("store fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mObj := new(objMocks.MockStorage)
			mStore := new(docMocks.MockStore)
			svc := NewMediaService(mObj, mStore)

			tt.setupMocks(mObj, mStore)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			mObj.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}

func TestMediaService_Open(t *testing.T) {
	ctx := context.Background()

	mObj := new(objMocks.MockStorage)
	mObj.On("Get", ctx, "media/uuid.png").
		Return(io.NopCloser(strings.NewReader("png content")), storage.ObjectInfo{Key: "media/uuid.png"}, nil)

	svc := NewMediaService(mObj, nil)
	rc, err := svc.Open(ctx, &model.Media{StoragePath: "media/uuid.png"})
	assert.NoError(t, err)
	content, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "png content", string(content))
	mObj.AssertExpectations(t)
}

func TestMediaService_URL(t *testing.T) {
	ctx := context.Background()

	mObj := new(objMocks.MockStorage)
	mObj.On("PresignGet", ctx, "media/uuid.png", 15*time.Minute).
		Return("https://minio/media/uuid.png?sig=abc", nil)

	svc := NewMediaService(mObj, nil)
	u, err := svc.URL(ctx, &model.Media{StoragePath: "media/uuid.png"}, 15*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, "https://minio/media/uuid.png?sig=abc", u)
	mObj.AssertExpectations(t)
}
