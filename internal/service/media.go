package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"feedapi/internal/codec"
	"feedapi/internal/docstore"
	"feedapi/internal/model"
	"feedapi/internal/storage"
)

const mediaCollection = "media"

var ErrReaderNil = errors.New("reader is nil")

// MediaService hosts the images posts and user statuses point at.
// Content lives in object storage; the media collection records what
// was uploaded.
type MediaService interface {
	// Upload streams the content to object storage and records it in
	// the media collection. If recording fails the object is removed
	// again. originalFilename is used only for its extension; the
	// stored name is a UUID.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Media, error)

	// URL returns a time-limited download URL for the media object.
	URL(ctx context.Context, m *model.Media, expiry time.Duration) (string, error)

	// Open streams the media content directly from object storage.
	// The caller closes the reader.
	Open(ctx context.Context, m *model.Media) (io.ReadCloser, error)

	List(ctx context.Context) ([]*model.Media, error)
	Get(ctx context.Context, id string) (*model.Media, bool, error)

	// Delete removes the object from storage, then the media record.
	Delete(ctx context.Context, id string) error
}

type mediaService struct {
	objects storage.Storage
	store   docstore.Store
}

func NewMediaService(objects storage.Storage, store docstore.Store) MediaService {
	return &mediaService{objects: objects, store: store}
}

func (s *mediaService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Media, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	genName := uuid.New().String() + filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("media", genName))

	objInfo, err := s.objects.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	media := &model.Media{
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	id, err := s.store.Insert(ctx, mediaCollection, codec.EncodeMedia(media))
	if err != nil {
		// Roll the object back so storage does not accumulate
		// unrecorded uploads.
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("record media failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("record media failed: %w", err)
	}
	media.ID = id
	return media, nil
}

func (s *mediaService) URL(ctx context.Context, m *model.Media, expiry time.Duration) (string, error) {
	return s.objects.PresignGet(ctx, m.StoragePath, expiry)
}

func (s *mediaService) Open(ctx context.Context, m *model.Media) (io.ReadCloser, error) {
	rc, _, err := s.objects.Get(ctx, m.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return rc, nil
}

func (s *mediaService) List(ctx context.Context) ([]*model.Media, error) {
	recs, err := s.store.Query(ctx, mediaCollection, docstore.Query{
		OrderBy:   "createdAt",
		Direction: docstore.Descending,
	})
	if err != nil {
		return nil, err
	}
	items := make([]*model.Media, 0, len(recs))
	for _, rec := range recs {
		items = append(items, codec.DecodeMedia(rec.ID, rec.Doc))
	}
	return items, nil
}

func (s *mediaService) Get(ctx context.Context, id string) (*model.Media, bool, error) {
	if id == "" {
		return nil, false, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, mediaCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return codec.DecodeMedia(id, doc), true, nil
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.store.Get(ctx, mediaCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	media := codec.DecodeMedia(id, doc)

	// Storage first; a failed object delete keeps the record so the
	// reference is not lost.
	if err := s.objects.Delete(ctx, media.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	err = s.store.Delete(ctx, mediaCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
