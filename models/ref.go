package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefState tracks how far a relationship reference has been expanded.
// Consumers must branch on it explicitly instead of type-switching on
// the field value.
type RefState int

const (
	RefUnresolved RefState = iota
	RefResolved
	RefMissing
)

// Ref is a single relationship reference. Stored as a bare identifier,
// it becomes either the embedded target document or an explicit missing
// marker after a resolution pass.
type Ref[T any] struct {
	State RefState `bson:"-" json:"-"`
	ID    string   `bson:"-" json:"-"`
	Doc   *T       `bson:"-" json:"-"`
}

func NewRef[T any](id string) Ref[T] {
	return Ref[T]{State: RefUnresolved, ID: id}
}

func ResolvedRef[T any](id string, doc *T) Ref[T] {
	return Ref[T]{State: RefResolved, ID: id, Doc: doc}
}

func MissingRef[T any](id string) Ref[T] {
	return Ref[T]{State: RefMissing, ID: id}
}

// IsZero reports a reference that holds no target at all, as opposed to
// one that points somewhere but has not been expanded.
func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Doc == nil
}

func (r Ref[T]) IsResolved() bool { return r.State == RefResolved }
func (r Ref[T]) IsMissing() bool  { return r.State == RefMissing }

// Stored form is the bare identifier, or an explicit null for an empty
// optional reference.
func (r Ref[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.ID == "" {
		return bson.MarshalValue(primitive.Null{})
	}
	return bson.MarshalValue(r.ID)
}

func (r *Ref[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*r = Ref[T]{}
	if t == bson.TypeNull || t == bson.TypeUndefined {
		return nil
	}
	var id string
	if err := bson.UnmarshalValue(t, data, &id); err != nil {
		return err
	}
	r.State = RefUnresolved
	r.ID = id
	return nil
}

// JSON form mirrors the stored/expanded duality: an identifier before
// resolution, the embedded document after, null for a dangling target.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch r.State {
	case RefResolved:
		return json.Marshal(r.Doc)
	case RefMissing:
		return []byte("null"), nil
	default:
		if r.ID == "" {
			return []byte("null"), nil
		}
		return json.Marshal(r.ID)
	}
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	*r = Ref[T]{}
	if string(data) == "null" {
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.State = RefUnresolved
		r.ID = id
		return nil
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.State = RefResolved
	r.Doc = &doc
	return nil
}

// RefList is an ordered many-reference field. Resolved distinguishes a
// collection that was expanded and is legitimately empty from one that
// has not been through a resolution pass yet.
type RefList[T any] struct {
	Items    []Ref[T] `bson:"-" json:"-"`
	Resolved bool     `bson:"-" json:"-"`
}

func NewRefList[T any](ids ...string) RefList[T] {
	items := make([]Ref[T], 0, len(ids))
	for _, id := range ids {
		items = append(items, NewRef[T](id))
	}
	return RefList[T]{Items: items}
}

func (l RefList[T]) Len() int { return len(l.Items) }

func (l RefList[T]) IDs() []string {
	ids := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Docs returns the embedded targets, skipping missing ones.
func (l RefList[T]) Docs() []*T {
	docs := make([]*T, 0, len(l.Items))
	for _, item := range l.Items {
		if item.State == RefResolved && item.Doc != nil {
			docs = append(docs, item.Doc)
		}
	}
	return docs
}

func (l RefList[T]) Contains(id string) bool {
	for _, item := range l.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (l RefList[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	ids := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}
	return bson.MarshalValue(ids)
}

func (l *RefList[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*l = RefList[T]{}
	if t == bson.TypeNull || t == bson.TypeUndefined {
		return nil
	}
	var ids []string
	if err := bson.UnmarshalValue(t, data, &ids); err != nil {
		return err
	}
	for _, id := range ids {
		l.Items = append(l.Items, NewRef[T](id))
	}
	return nil
}

func (l RefList[T]) MarshalJSON() ([]byte, error) {
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

func (l *RefList[T]) UnmarshalJSON(data []byte) error {
	*l = RefList[T]{}
	if string(data) == "null" {
		return nil
	}
	var items []Ref[T]
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.Items = items
	return nil
}
