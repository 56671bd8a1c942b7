// Package codec maps domain entities to and from generic documents.
// Every entity field is always written, absent values included, so a
// stored document is self-describing regardless of which client wrote
// it. Timestamps are written as epoch milliseconds; decoding also
// accepts a store-native timestamp for documents written by older
// clients. Decoding never fails: missing or mistyped fields fall back
// to zero values.
package codec

import (
	"feedapi/internal/docstore"
	"feedapi/internal/model"
)

// EncodePost converts a post to a document. The id stays outside the
// field map; Likes is written as an empty list when nil.
func EncodePost(p *model.Post) docstore.Document {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	return docstore.Document{
		"userId":      docstore.String(p.UserID),
		"username":    docstore.String(p.Username),
		"description": docstore.String(p.Description),
		"userImage":   docstore.String(p.UserImage),
		"createdAt":   docstore.Int(p.CreatedAt.UnixMilli()),
		"likes":       docstore.Strings(likes),
	}
}

func DecodePost(id string, doc docstore.Document) *model.Post {
	return &model.Post{
		ID:          id,
		UserID:      doc["userId"].AsString(),
		Username:    doc["username"].AsString(),
		Description: doc["description"].AsString(),
		UserImage:   doc["userImage"].AsString(),
		CreatedAt:   doc["createdAt"].AsTime(),
		Likes:       doc["likes"].AsStrings(),
	}
}

func EncodeComment(c *model.Comment) docstore.Document {
	return docstore.Document{
		"postId":    docstore.String(c.PostID),
		"userId":    docstore.String(c.UserID),
		"username":  docstore.String(c.Username),
		"comment":   docstore.String(c.Comment),
		"createdAt": docstore.Int(c.CreatedAt.UnixMilli()),
	}
}

func DecodeComment(id string, doc docstore.Document) *model.Comment {
	return &model.Comment{
		ID:        id,
		PostID:    doc["postId"].AsString(),
		UserID:    doc["userId"].AsString(),
		Username:  doc["username"].AsString(),
		Comment:   doc["comment"].AsString(),
		CreatedAt: doc["createdAt"].AsTime(),
	}
}

func EncodeTopic(t *model.Topic) docstore.Document {
	return docstore.Document{
		"userId":                docstore.String(t.UserID),
		"progress":              docstore.Int(int64(t.Progress)),
		"topicOne":              docstore.String(t.TopicOne),
		"topicOneDescription":   docstore.String(t.TopicOneDescription),
		"topicTwo":              docstore.String(t.TopicTwo),
		"topicTwoDescription":   docstore.String(t.TopicTwoDescription),
		"topicThree":            docstore.String(t.TopicThree),
		"topicThreeDescription": docstore.String(t.TopicThreeDescription),
		"topicFour":             docstore.String(t.TopicFour),
		"topicFourDescription":  docstore.String(t.TopicFourDescription),
		"topicFive":             docstore.String(t.TopicFive),
		"topicFiveDescription":  docstore.String(t.TopicFiveDescription),
		"createdAt":             docstore.Int(t.CreatedAt.UnixMilli()),
	}
}

// DecodeTopic normalizes progress to the platform int no matter which
// integer width the store handed back.
func DecodeTopic(id string, doc docstore.Document) *model.Topic {
	return &model.Topic{
		ID:                    id,
		UserID:                doc["userId"].AsString(),
		Progress:              doc["progress"].AsInt(),
		TopicOne:              doc["topicOne"].AsString(),
		TopicOneDescription:   doc["topicOneDescription"].AsString(),
		TopicTwo:              doc["topicTwo"].AsString(),
		TopicTwoDescription:   doc["topicTwoDescription"].AsString(),
		TopicThree:            doc["topicThree"].AsString(),
		TopicThreeDescription: doc["topicThreeDescription"].AsString(),
		TopicFour:             doc["topicFour"].AsString(),
		TopicFourDescription:  doc["topicFourDescription"].AsString(),
		TopicFive:             doc["topicFive"].AsString(),
		TopicFiveDescription:  doc["topicFiveDescription"].AsString(),
		CreatedAt:             doc["createdAt"].AsTime(),
	}
}

func EncodeUserStatus(s *model.UserStatus) docstore.Document {
	return docstore.Document{
		"userId":      docstore.String(s.UserID),
		"username":    docstore.String(s.Username),
		"description": docstore.String(s.Description),
		"imageUrl":    docstore.String(s.ImageURL),
		"createdAt":   docstore.Int(s.CreatedAt.UnixMilli()),
	}
}

func DecodeUserStatus(id string, doc docstore.Document) *model.UserStatus {
	return &model.UserStatus{
		ID:          id,
		UserID:      doc["userId"].AsString(),
		Username:    doc["username"].AsString(),
		Description: doc["description"].AsString(),
		ImageURL:    doc["imageUrl"].AsString(),
		CreatedAt:   doc["createdAt"].AsTime(),
	}
}

func EncodeMedia(m *model.Media) docstore.Document {
	return docstore.Document{
		"filename":    docstore.String(m.Filename),
		"storagePath": docstore.String(m.StoragePath),
		"size":        docstore.Int(m.Size),
		"contentType": docstore.String(m.ContentType),
		"createdAt":   docstore.Int(m.CreatedAt.UnixMilli()),
	}
}

func DecodeMedia(id string, doc docstore.Document) *model.Media {
	return &model.Media{
		ID:          id,
		Filename:    doc["filename"].AsString(),
		StoragePath: doc["storagePath"].AsString(),
		Size:        doc["size"].AsInt64(),
		ContentType: doc["contentType"].AsString(),
		CreatedAt:   doc["createdAt"].AsTime(),
	}
}
