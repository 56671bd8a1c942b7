// Package mongo implements docstore.Store on MongoDB. One Mongo
// collection per logical collection, one document per entity; ids are
// ObjectID hex strings assigned at insert.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"feedapi/internal/docstore"
)

type Store struct {
	db *mongo.Database
}

var _ docstore.Store = (*Store)(nil)

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// No stored document can carry a malformed id.
		return nil, docstore.ErrNotFound
	}

	var raw bson.M
	err = s.col(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get: %w", err)
	}
	return documentFromBSON(raw), nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	oid := primitive.NewObjectID()
	raw := documentToBSON(doc)
	raw["_id"] = oid

	if _, err := s.col(collection).InsertOne(ctx, raw); err != nil {
		return "", fmt.Errorf("mongo insert: %w", err)
	}
	return oid.Hex(), nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, doc docstore.Document) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return docstore.ErrNotFound
	}

	res, err := s.col(collection).ReplaceOne(ctx, bson.M{"_id": oid}, documentToBSON(doc))
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return docstore.ErrNotFound
	}

	res, err := s.col(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error) {
	filter := bson.M{}
	for field, v := range q.Filter {
		filter[field] = valueToBSON(v)
	}

	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Direction == docstore.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}

	cur, err := s.col(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo query: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]docstore.Record, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("mongo query decode: %w", err)
		}
		rec := docstore.Record{Doc: documentFromBSON(raw)}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			rec.ID = oid.Hex()
		}
		out = append(out, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo query: %w", err)
	}
	return out, nil
}

func documentToBSON(doc docstore.Document) bson.M {
	raw := make(bson.M, len(doc))
	for field, v := range doc {
		raw[field] = valueToBSON(v)
	}
	return raw
}

func valueToBSON(v docstore.Value) any {
	switch v.Kind() {
	case docstore.KindString:
		return v.AsString()
	case docstore.KindInt:
		return v.AsInt64()
	case docstore.KindFloat:
		return v.AsFloat()
	case docstore.KindBool:
		return v.AsBool()
	case docstore.KindTime:
		return primitive.NewDateTimeFromTime(v.AsTime())
	case docstore.KindStrings:
		return v.AsStrings()
	default:
		return nil
	}
}

// documentFromBSON maps a raw Mongo document back to the generic form.
// The _id is handled by the caller; fields of types outside the Value
// sum are dropped rather than failing the read.
func documentFromBSON(raw bson.M) docstore.Document {
	doc := make(docstore.Document, len(raw))
	for field, rv := range raw {
		if field == "_id" {
			continue
		}
		if v, ok := bsonToValue(rv); ok {
			doc[field] = v
		}
	}
	return doc
}

func bsonToValue(rv any) (docstore.Value, bool) {
	switch x := rv.(type) {
	case string:
		return docstore.String(x), true
	case int32:
		return docstore.Int(int64(x)), true
	case int64:
		return docstore.Int(x), true
	case float64:
		return docstore.Float(x), true
	case bool:
		return docstore.Bool(x), true
	case primitive.DateTime:
		return docstore.Time(x.Time()), true
	case time.Time:
		return docstore.Time(x), true
	case primitive.A:
		ss := make([]string, 0, len(x))
		for _, el := range x {
			if s, ok := el.(string); ok {
				ss = append(ss, s)
			}
		}
		return docstore.Strings(ss), true
	case []string:
		return docstore.Strings(x), true
	default:
		return docstore.Value{}, false
	}
}
