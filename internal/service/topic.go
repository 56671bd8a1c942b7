package service

import (
	"context"
	"errors"
	"time"

	"feedapi/internal/codec"
	"feedapi/internal/docstore"
	"feedapi/internal/model"
)

const topicCollection = "topics"

// UpdateTopicInput carries the updatable topic fields: progress and
// every topic/description pair. Owner, id and creation time stay fixed.
// Progress is stored as supplied; out-of-range values are the caller's
// problem.
type UpdateTopicInput struct {
	Progress              int    `json:"progress"`
	TopicOne              string `json:"topicOne"`
	TopicOneDescription   string `json:"topicOneDescription"`
	TopicTwo              string `json:"topicTwo"`
	TopicTwoDescription   string `json:"topicTwoDescription"`
	TopicThree            string `json:"topicThree"`
	TopicThreeDescription string `json:"topicThreeDescription"`
	TopicFour             string `json:"topicFour"`
	TopicFourDescription  string `json:"topicFourDescription"`
	TopicFive             string `json:"topicFive"`
	TopicFiveDescription  string `json:"topicFiveDescription"`
}

type TopicService interface {
	Create(ctx context.Context, topic *model.Topic) (*model.Topic, error)
	Get(ctx context.Context, id string) (*model.Topic, bool, error)
	List(ctx context.Context, userID string) ([]*model.Topic, error)
	Update(ctx context.Context, id string, in UpdateTopicInput) (*model.Topic, error)
	Delete(ctx context.Context, id string) error
}

type topicService struct {
	store docstore.Store
}

func NewTopicService(store docstore.Store) TopicService {
	return &topicService{store: store}
}

func (s *topicService) Create(ctx context.Context, topic *model.Topic) (*model.Topic, error) {
	if topic.CreatedAt.IsZero() {
		topic.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	id, err := s.store.Insert(ctx, topicCollection, codec.EncodeTopic(topic))
	if err != nil {
		return nil, err
	}
	topic.ID = id
	return topic, nil
}

func (s *topicService) Get(ctx context.Context, id string) (*model.Topic, bool, error) {
	if id == "" {
		return nil, false, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, topicCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return codec.DecodeTopic(id, doc), true, nil
}

func (s *topicService) List(ctx context.Context, userID string) ([]*model.Topic, error) {
	q := docstore.Query{
		OrderBy:   "createdAt",
		Direction: docstore.Descending,
	}
	if userID != "" {
		q.Filter = map[string]docstore.Value{"userId": docstore.String(userID)}
	}

	recs, err := s.store.Query(ctx, topicCollection, q)
	if err != nil {
		return nil, err
	}
	topics := make([]*model.Topic, 0, len(recs))
	for _, rec := range recs {
		topics = append(topics, codec.DecodeTopic(rec.ID, rec.Doc))
	}
	return topics, nil
}

func (s *topicService) Update(ctx context.Context, id string, in UpdateTopicInput) (*model.Topic, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.store.Get(ctx, topicCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	topic := codec.DecodeTopic(id, doc)
	topic.Progress = in.Progress
	topic.TopicOne = in.TopicOne
	topic.TopicOneDescription = in.TopicOneDescription
	topic.TopicTwo = in.TopicTwo
	topic.TopicTwoDescription = in.TopicTwoDescription
	topic.TopicThree = in.TopicThree
	topic.TopicThreeDescription = in.TopicThreeDescription
	topic.TopicFour = in.TopicFour
	topic.TopicFourDescription = in.TopicFourDescription
	topic.TopicFive = in.TopicFive
	topic.TopicFiveDescription = in.TopicFiveDescription

	if err := s.store.Replace(ctx, topicCollection, id, codec.EncodeTopic(topic)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return topic, nil
}

func (s *topicService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	err := s.store.Delete(ctx, topicCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
