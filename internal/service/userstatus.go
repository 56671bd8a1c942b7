package service

import (
	"context"
	"errors"
	"time"

	"feedapi/internal/codec"
	"feedapi/internal/docstore"
	"feedapi/internal/model"
)

const userStatusCollection = "user_statuses"

// UpdateUserStatusInput carries the updatable status fields.
type UpdateUserStatusInput struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type UserStatusService interface {
	Create(ctx context.Context, status *model.UserStatus) (*model.UserStatus, error)
	Get(ctx context.Context, id string) (*model.UserStatus, bool, error)
	List(ctx context.Context, userID string) ([]*model.UserStatus, error)
	Update(ctx context.Context, id string, in UpdateUserStatusInput) (*model.UserStatus, error)
	Delete(ctx context.Context, id string) error
}

type userStatusService struct {
	store docstore.Store
}

func NewUserStatusService(store docstore.Store) UserStatusService {
	return &userStatusService{store: store}
}

func (s *userStatusService) Create(ctx context.Context, status *model.UserStatus) (*model.UserStatus, error) {
	if status.CreatedAt.IsZero() {
		status.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	id, err := s.store.Insert(ctx, userStatusCollection, codec.EncodeUserStatus(status))
	if err != nil {
		return nil, err
	}
	status.ID = id
	return status, nil
}

func (s *userStatusService) Get(ctx context.Context, id string) (*model.UserStatus, bool, error) {
	if id == "" {
		return nil, false, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, userStatusCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return codec.DecodeUserStatus(id, doc), true, nil
}

func (s *userStatusService) List(ctx context.Context, userID string) ([]*model.UserStatus, error) {
	q := docstore.Query{
		OrderBy:   "createdAt",
		Direction: docstore.Descending,
	}
	if userID != "" {
		q.Filter = map[string]docstore.Value{"userId": docstore.String(userID)}
	}

	recs, err := s.store.Query(ctx, userStatusCollection, q)
	if err != nil {
		return nil, err
	}
	statuses := make([]*model.UserStatus, 0, len(recs))
	for _, rec := range recs {
		statuses = append(statuses, codec.DecodeUserStatus(rec.ID, rec.Doc))
	}
	return statuses, nil
}

func (s *userStatusService) Update(ctx context.Context, id string, in UpdateUserStatusInput) (*model.UserStatus, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, userStatusCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	status := codec.DecodeUserStatus(id, doc)
	status.Username = in.Username
	status.Description = in.Description
	status.ImageURL = in.ImageURL

	if err := s.store.Replace(ctx, userStatusCollection, id, codec.EncodeUserStatus(status)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return status, nil
}

func (s *userStatusService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	err := s.store.Delete(ctx, userStatusCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
