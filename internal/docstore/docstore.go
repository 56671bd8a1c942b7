// Package docstore defines the generic document model and the store
// contract every persistence backend implements. Services talk to a
// Store and never to a database driver directly; implementations live
// in subpackages (mongo, postgres, memory).
package docstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get, Replace and Delete when no document
// with the given id exists in the collection. Any other error from a
// Store means the backing store itself failed; callers do not retry.
var ErrNotFound = errors.New("document not found")

// Kind enumerates the value types a document field can hold.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindTime
	KindStrings
)

// Value is a closed sum over the field types a document may contain:
// string, int64, float64, bool, time.Time and []string. The zero Value
// has KindInvalid and decodes to a type-appropriate zero through every
// accessor, so readers never have to check for missing fields.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	b    bool
	t    time.Time
	list []string
}

func String(s string) Value { return Value{kind: KindString, str: s} }
func Int(i int64) Value { return Value{kind: KindInt, i64: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f64: f} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }
func Strings(ss []string) Value { return Value{kind: KindStrings, list: ss} }

func (v Value) Kind() Kind { return v.kind }

// AsString returns the string value, or "" for any other kind.
func (v Value) AsString() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// AsInt64 returns the integer value. Floats are truncated; a stored
// 32-bit integer arrives here already widened by the backend.
func (v Value) AsInt64() int64 {
	switch v.kind {
	case KindInt:
		return v.i64
	case KindFloat:
		return int64(v.f64)
	default:
		return 0
	}
}

// AsInt narrows AsInt64 to the platform int.
func (v Value) AsInt() int { return int(v.AsInt64()) }

func (v Value) AsFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f64
	case KindInt:
		return float64(v.i64)
	default:
		return 0
	}
}

func (v Value) AsBool() bool {
	if v.kind == KindBool {
		return v.b
	}
	return false
}

// AsTime returns the temporal value. Timestamps are written as epoch
// milliseconds, but a document may carry a store-native timestamp
// instead; both forms decode to the same UTC instant. Anything else
// yields the zero time.
func (v Value) AsTime() time.Time {
	switch v.kind {
	case KindTime:
		return v.t.UTC()
	case KindInt:
		return time.UnixMilli(v.i64).UTC()
	case KindFloat:
		return time.UnixMilli(int64(v.f64)).UTC()
	default:
		return time.Time{}
	}
}

// AsStrings returns the string-list value, or an empty slice.
func (v Value) AsStrings() []string {
	if v.kind == KindStrings && v.list != nil {
		return v.list
	}
	return []string{}
}

// Equal reports whether two values are the same under the coercion
// rules used for decoding: ints and floats compare numerically, and a
// time compares equal to its epoch-millis encoding.
func (v Value) Equal(o Value) bool {
	switch v.kind {
	case KindString:
		return o.kind == KindString && v.str == o.str
	case KindBool:
		return o.kind == KindBool && v.b == o.b
	case KindInt, KindFloat, KindTime:
		if o.kind != KindInt && o.kind != KindFloat && o.kind != KindTime {
			return false
		}
		return v.orderKey() == o.orderKey()
	case KindStrings:
		if o.kind != KindStrings || len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	default:
		return o.kind == KindInvalid
	}
}

// Compare orders two values for query sorting. Numeric and temporal
// kinds share one axis; strings order lexicographically; everything
// else is treated as equal.
func (v Value) Compare(o Value) int {
	if v.kind == KindString && o.kind == KindString {
		switch {
		case v.str < o.str:
			return -1
		case v.str > o.str:
			return 1
		}
		return 0
	}
	a, b := v.orderKey(), o.orderKey()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Value) orderKey() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i64)
	case KindFloat:
		return v.f64
	case KindTime:
		return float64(v.t.UnixMilli())
	default:
		return 0
	}
}

// Document is a schemaless record: field name to value. The document id
// is carried outside the field map, mirroring how document stores keep
// the key separate from the payload.
type Document map[string]Value

// Clone returns a shallow copy safe to mutate field-wise.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Direction selects the sort order of a Query.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Query describes an equality-filtered, single-field-ordered scan of a
// collection. An empty Filter matches every document.
type Query struct {
	Filter    map[string]Value
	OrderBy   string
	Direction Direction
}

// Record pairs a document with its store-assigned id, as returned by
// Query.
type Record struct {
	ID  string
	Doc Document
}

// Store is the only gateway to the backing document store.
//
// Insert assigns and returns the new document's id. Replace overwrites
// the whole document at id and fails with ErrNotFound if it does not
// exist; there is no upsert. Delete of an absent id also fails with
// ErrNotFound, uniformly across backends. None of the operations carry
// a concurrency token: a read-modify-write sequence built on Get and
// Replace can lose updates under concurrent writers.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	Replace(ctx context.Context, collection, id string, doc Document) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection string, q Query) ([]Record, error)
}
