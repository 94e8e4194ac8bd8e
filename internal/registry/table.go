// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package registry maps texture IDs to the GPU resources that back them.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/gogpu/imrender/draw"
)

// ErrNotFound is returned when an ID is not registered.
var ErrNotFound = errors.New("registry: texture not found")

// Resource is a value owned by a Table.
type Resource interface {
	// Release frees the underlying GPU objects.
	Release()

	// SizeBytes reports the resource's GPU memory footprint.
	SizeBytes() uint64
}

// Table owns a set of resources keyed by freshly generated IDs.
// IDs start at 1 and are never reused. Table is not safe for concurrent use.
type Table[T Resource] struct {
	entries map[draw.TextureID]T
	next    draw.TextureID
	bytes   uint64
}

// New creates an empty table.
func New[T Resource]() *Table[T] {
	return &Table[T]{
		entries: make(map[draw.TextureID]T),
		next:    1,
	}
}

// Insert takes ownership of r and returns its ID.
func (t *Table[T]) Insert(r T) draw.TextureID {
	id := t.next
	t.next++
	t.entries[id] = r
	t.bytes += r.SizeBytes()
	return id
}

// Get returns the resource registered under id.
func (t *Table[T]) Get(id draw.TextureID) (T, error) {
	r, ok := t.entries[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return r, nil
}

// Contains reports whether id is registered.
func (t *Table[T]) Contains(id draw.TextureID) bool {
	_, ok := t.entries[id]
	return ok
}

// Remove releases and unregisters the resource under id.
func (t *Table[T]) Remove(id draw.TextureID) error {
	r, ok := t.entries[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	delete(t.entries, id)
	t.bytes -= r.SizeBytes()
	r.Release()
	return nil
}

// Len returns the number of registered resources.
func (t *Table[T]) Len() int { return len(t.entries) }

// Bytes returns the summed SizeBytes of all registered resources.
func (t *Table[T]) Bytes() uint64 { return t.bytes }

// All iterates over registered resources in ascending ID order.
func (t *Table[T]) All() iter.Seq2[draw.TextureID, T] {
	return func(yield func(draw.TextureID, T) bool) {
		for _, id := range slices.Sorted(maps.Keys(t.entries)) {
			if !yield(id, t.entries[id]) {
				return
			}
		}
	}
}

// Clear releases every resource. IDs issued before Clear stay retired.
func (t *Table[T]) Clear() {
	for id, r := range t.entries {
		r.Release()
		delete(t.entries, id)
	}
	t.bytes = 0
}
