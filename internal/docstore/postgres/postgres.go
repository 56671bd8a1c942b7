// Package postgres implements docstore.Store on a single jsonb table,
// keeping the relational backend behind the same contract as the
// schemaless one. Uses database/sql with parameterized queries only.
package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"feedapi/internal/docstore"
)

type Store struct {
	db *sql.DB
}

var _ docstore.Store = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	const q = `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var data []byte
	err := s.db.QueryRowContext(ctx, q, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get: %w", err)
	}
	return unmarshalDocument(data)
}

func (s *Store) Insert(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	const q = `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`

	id := uuid.NewString()
	data, err := marshalDocument(doc)
	if err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx, q, collection, id, data); err != nil {
		return "", fmt.Errorf("postgres insert: %w", err)
	}
	return id, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, doc docstore.Document) error {
	const q = `UPDATE documents SET data = $3 WHERE collection = $1 AND id = $2`

	data, err := marshalDocument(doc)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, q, collection, id, data)
	if err != nil {
		return fmt.Errorf("postgres replace: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, q, collection, id)
	if err != nil {
		return fmt.Errorf("postgres delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// Query filters via jsonb containment and orders on an extracted jsonb
// member; jsonb compares numbers numerically, so epoch-millis
// timestamps sort correctly. The order field travels as a bind
// parameter, never as an identifier.
func (s *Store) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Record, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1`
	args := []any{collection}

	if len(q.Filter) > 0 {
		filter, err := marshalFilter(q.Filter)
		if err != nil {
			return nil, err
		}
		args = append(args, filter)
		query += fmt.Sprintf(" AND data @> $%d::jsonb", len(args))
	}
	if q.OrderBy != "" {
		args = append(args, q.OrderBy)
		query += fmt.Sprintf(" ORDER BY data -> $%d::text", len(args))
		if q.Direction == docstore.Descending {
			query += " DESC"
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres query: %w", err)
	}
	defer rows.Close()

	out := make([]docstore.Record, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("postgres query scan: %w", err)
		}
		doc, err := unmarshalDocument(data)
		if err != nil {
			return nil, err
		}
		out = append(out, docstore.Record{ID: id, Doc: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres query: %w", err)
	}
	return out, nil
}

func marshalDocument(doc docstore.Document) ([]byte, error) {
	native := make(map[string]any, len(doc))
	for field, v := range doc {
		native[field] = valueToJSON(v)
	}
	data, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

func marshalFilter(filter map[string]docstore.Value) ([]byte, error) {
	native := make(map[string]any, len(filter))
	for field, v := range filter {
		native[field] = valueToJSON(v)
	}
	data, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}
	return data, nil
}

// valueToJSON keeps jsonb values comparable with what the codecs write:
// times collapse to epoch millis so containment and ordering see one
// numeric form.
func valueToJSON(v docstore.Value) any {
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
		return v.AsTime().UnixMilli()
	case docstore.KindStrings:
		return v.AsStrings()
	default:
		return nil
	}
}

func unmarshalDocument(data []byte) (docstore.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var native map[string]any
	if err := dec.Decode(&native); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	doc := make(docstore.Document, len(native))
	for field, rv := range native {
		if v, ok := jsonToValue(rv); ok {
			doc[field] = v
		}
	}
	return doc, nil
}

func jsonToValue(rv any) (docstore.Value, bool) {
	switch x := rv.(type) {
	case string:
		return docstore.String(x), true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return docstore.Int(i), true
		}
		f, err := x.Float64()
		if err != nil {
			return docstore.Value{}, false
		}
		return docstore.Float(f), true
	case bool:
		return docstore.Bool(x), true
	case []any:
		ss := make([]string, 0, len(x))
		for _, el := range x {
			if s, ok := el.(string); ok {
				ss = append(ss, s)
			}
		}
		return docstore.Strings(ss), true
	default:
		return docstore.Value{}, false
	}
}
