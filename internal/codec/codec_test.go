package codec

import (
	"testing"
	"time"

	"feedapi/internal/docstore"
	"feedapi/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPostRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 9, 12, 30, 45, 123_000_000, time.UTC)

	tests := []struct {
		name string
		post *model.Post
	}{
		{
			name: "full post",
			post: &model.Post{
				ID:          "p1",
				UserID:      "u1",
				Username:    "alice",
				Description: "first post",
				UserImage:   "https://img/a.png",
				CreatedAt:   created,
				Likes:       []string{"u2", "u3"},
			},
		},
		{
			name: "no image, nil likes",
			post: &model.Post{
				ID:          "p2",
				UserID:      "u1",
				Username:    "alice",
				Description: "text only",
				CreatedAt:   created,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := EncodePost(tt.post)
			got := DecodePost(tt.post.ID, doc)

			assert.Equal(t, tt.post.ID, got.ID)
			assert.Equal(t, tt.post.UserID, got.UserID)
			assert.Equal(t, tt.post.Username, got.Username)
			assert.Equal(t, tt.post.Description, got.Description)
			assert.Equal(t, tt.post.UserImage, got.UserImage)
			// millisecond granularity survives the round trip
			assert.Equal(t, tt.post.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
			if tt.post.Likes == nil {
				assert.Empty(t, got.Likes)
			} else {
				assert.Equal(t, tt.post.Likes, got.Likes)
			}
		})
	}
}

func TestEncodePost_WritesEveryField(t *testing.T) {
	doc := EncodePost(&model.Post{})

	for _, field := range []string{"userId", "username", "description", "userImage", "createdAt", "likes"} {
		_, ok := doc[field]
		assert.True(t, ok, "field %q must be present", field)
	}
	assert.Equal(t, []string{}, doc["likes"].AsStrings())
}

func TestDecodePost_MissingFields(t *testing.T) {
	// A document written by another client may lack optional fields;
	// decoding must fall back to zero values instead of failing.
	got := DecodePost("p1", docstore.Document{
		"userId": docstore.String("u1"),
	})

	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Empty(t, got.Username)
	assert.Empty(t, got.Likes)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestDecodePost_NativeTimestamp(t *testing.T) {
	created := time.Date(2023, 11, 2, 8, 0, 0, 0, time.UTC)

	asMillis := DecodePost("p", docstore.Document{"createdAt": docstore.Int(created.UnixMilli())})
	asTime := DecodePost("p", docstore.Document{"createdAt": docstore.Time(created)})

	assert.Equal(t, asMillis.CreatedAt, asTime.CreatedAt)
	assert.Equal(t, created.UnixMilli(), asTime.CreatedAt.UnixMilli())
}

func TestCommentRoundTrip(t *testing.T) {
	c := &model.Comment{
		ID:        "c1",
		PostID:    "p1",
		UserID:    "u2",
		Username:  "bob",
		Comment:   "nice one",
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	got := DecodeComment(c.ID, EncodeComment(c))
	assert.Equal(t, c, got)
}

func TestTopicRoundTrip(t *testing.T) {
	topic := &model.Topic{
		ID:                    "t1",
		UserID:                "u1",
		Progress:              40,
		TopicOne:              "go",
		TopicOneDescription:   "generics",
		TopicTwo:              "sql",
		TopicTwoDescription:   "window functions",
		TopicThree:            "docker",
		TopicThreeDescription: "multi-stage builds",
		TopicFour:             "grpc",
		TopicFourDescription:  "streaming",
		TopicFive:             "k8s",
		TopicFiveDescription:  "operators",
		CreatedAt:             time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	got := DecodeTopic(topic.ID, EncodeTopic(topic))
	assert.Equal(t, topic, got)
}

func TestDecodeTopic_ProgressWidths(t *testing.T) {
	// Stores hand progress back as whatever integer width they use
	// internally; all of them must normalize to the same int.
	tests := []struct {
		name  string
		value docstore.Value
		want  int
	}{
		{"int64", docstore.Int(75), 75},
		{"float (json number)", docstore.Float(75), 75},
		{"missing", docstore.Value{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeTopic("t", docstore.Document{"progress": tt.value})
			assert.Equal(t, tt.want, got.Progress)
		})
	}
}

func TestUserStatusRoundTrip(t *testing.T) {
	s := &model.UserStatus{
		ID:          "s1",
		UserID:      "u1",
		Username:    "alice",
		Description: "shipping",
		ImageURL:    "https://img/s.png",
		CreatedAt:   time.Date(2024, 2, 2, 2, 2, 2, 0, time.UTC),
	}

	got := DecodeUserStatus(s.ID, EncodeUserStatus(s))
	assert.Equal(t, s, got)
}

func TestMediaRoundTrip(t *testing.T) {
	m := &model.Media{
		ID:          "m1",
		Filename:    "a.png",
		StoragePath: "media/a.png",
		Size:        2048,
		ContentType: "image/png",
		CreatedAt:   time.Date(2024, 5, 5, 5, 5, 5, 0, time.UTC),
	}

	got := DecodeMedia(m.ID, EncodeMedia(m))
	assert.Equal(t, m, got)
}
