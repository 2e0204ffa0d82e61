package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// Record is implemented by every stored record type.
type Record interface {
	RecordID() string
	StampNew(id string, createdAt time.Time)
}

// Collection provides typed CRUD over one named collection. T is a pointer
// type, e.g. Collection[*domain.Lead].
type Collection[T Record] struct {
	store Store
	name  string
	newID func() string
	now   func() time.Time
}

// NewCollection creates a typed view over the named collection.
func NewCollection[T Record](s Store, name string) *Collection[T] {
	return &Collection[T]{
		store: s,
		name:  name,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// All returns the full collection, empty if it does not exist yet.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	data, err := c.store.Read(ctx, c.name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("parsing collection %s", c.name), err)
	}
	return records, nil
}

// Filter returns the records matching keep. O(n) scan over the full read.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := []T{}
	for _, rec := range all {
		if keep(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	all, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range all {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return zero, errors.New(errors.ErrCodeNotFound, fmt.Sprintf("%s %s not found", c.name, id))
}

// Append stamps rec with a new id and creation timestamp and writes it to
// the end of the collection.
func (c *Collection[T]) Append(ctx context.Context, rec T) (T, error) {
	var zero T
	if c.store.ReadOnly() {
		return zero, errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
	}
	all, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	rec.StampNew(c.newID(), c.now())
	all = append(all, rec)
	if err := c.writeAll(ctx, all); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update shallow-merges patch into the record with the given id. Merged
// fields fully replace prior values; unspecified fields are untouched.
// Unknown field names and attempts to rewrite id or created_at are rejected.
func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T
	if c.store.ReadOnly() {
		return zero, errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
	}
	if _, ok := patch["id"]; ok {
		return zero, errors.NewFieldValidation("id", "id cannot be changed")
	}
	if _, ok := patch["created_at"]; ok {
		return zero, errors.NewFieldValidation("created_at", "created_at cannot be changed")
	}

	all, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for i, rec := range all {
		if rec.RecordID() != id {
			continue
		}
		merged, err := mergeRecord(rec, patch)
		if err != nil {
			return zero, err
		}
		all[i] = merged
		if err := c.writeAll(ctx, all); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, errors.New(errors.ErrCodeNotFound, fmt.Sprintf("%s %s not found", c.name, id))
}

// Put replaces the record with the same id in place.
func (c *Collection[T]) Put(ctx context.Context, rec T) (T, error) {
	var zero T
	if c.store.ReadOnly() {
		return zero, errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
	}
	all, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for i, existing := range all {
		if existing.RecordID() == rec.RecordID() {
			all[i] = rec
			if err := c.writeAll(ctx, all); err != nil {
				return zero, err
			}
			return rec, nil
		}
	}
	return zero, errors.New(errors.ErrCodeNotFound, fmt.Sprintf("%s %s not found", c.name, rec.RecordID()))
}

// Delete removes the record with the given id, reporting whether a removal
// occurred. Deleting an unknown id is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	if c.store.ReadOnly() {
		return false, errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
	}
	all, err := c.All(ctx)
	if err != nil {
		return false, err
	}
	for i, rec := range all {
		if rec.RecordID() == id {
			all = append(all[:i], all[i+1:]...)
			if err := c.writeAll(ctx, all); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (c *Collection[T]) writeAll(ctx context.Context, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("encoding collection %s", c.name), err)
	}
	return c.store.Write(ctx, c.name, data)
}

// mergeRecord applies a shallow JSON merge of patch onto rec and decodes the
// result back into the record type, rejecting unknown fields.
func mergeRecord[T Record](rec T, patch map[string]any) (T, error) {
	var zero T

	encoded, err := json.Marshal(rec)
	if err != nil {
		return zero, errors.Wrap(errors.ErrCodeInternalError, "encoding record for merge", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return zero, errors.Wrap(errors.ErrCodeInternalError, "decoding record for merge", err)
	}
	for k, v := range patch {
		fields[k] = v
	}

	mergedJSON, err := json.Marshal(fields)
	if err != nil {
		return zero, errors.Wrap(errors.ErrCodeInternalError, "encoding merged record", err)
	}

	// T is a pointer type; allocate a fresh value of the struct behind it so
	// the merge never mutates the record still held in the caller's slice.
	merged := reflect.New(reflect.TypeOf(rec).Elem())
	dec := json.NewDecoder(bytes.NewReader(mergedJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(merged.Interface()); err != nil {
		return zero, errors.NewFieldValidation("_", fmt.Sprintf("invalid field in update: %v", err))
	}
	return merged.Interface().(T), nil
}
