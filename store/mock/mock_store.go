/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the Store interface for testing
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
)

// Store is a mock implementation of store.Store[T] for testing. Seeded items
// are treated as the matching set of every query; the default Find applies
// the descriptor's sort order (via an injected less function) and its
// skip/limit window, and the default Count returns the number of seeded
// items. Both calls are counted so tests can assert how many store reads a
// dispatch issued.
type Store[T any] struct {
	mu         sync.RWMutex
	items      []T
	findFunc   func(ctx context.Context, collection string, desc querymodels.Descriptor) ([]T, error)
	countFunc  func(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error)
	lessFunc   func(a, b T, key predicate.Sort) bool
	findErr    error
	countErr   error
	findCalls  int
	countCalls int
}

// New creates a new mock Store
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Seed replaces the mock's matching set with the given items
func (m *Store[T]) Seed(items ...T) *Store[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]T(nil), items...)
	return m
}

// WithFindFunc sets a custom find function for testing
func (m *Store[T]) WithFindFunc(f func(ctx context.Context, collection string, desc querymodels.Descriptor) ([]T, error)) *Store[T] {
	m.findFunc = f
	return m
}

// WithCountFunc sets a custom count function for testing
func (m *Store[T]) WithCountFunc(f func(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error)) *Store[T] {
	m.countFunc = f
	return m
}

// WithLessFunc sets the comparison used to honor a descriptor's sort order
func (m *Store[T]) WithLessFunc(f func(a, b T, key predicate.Sort) bool) *Store[T] {
	m.lessFunc = f
	return m
}

// WithFindError makes Find return an error
func (m *Store[T]) WithFindError(err error) *Store[T] {
	m.findErr = err
	return m
}

// WithCountError makes Count return an error
func (m *Store[T]) WithCountError(err error) *Store[T] {
	m.countErr = err
	return m
}

// Find returns the seeded items in insertion order, sorted and windowed per
// the descriptor
func (m *Store[T]) Find(ctx context.Context, collection string, desc querymodels.Descriptor) ([]T, error) {
	m.mu.Lock()
	m.findCalls++
	m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.findFunc != nil {
		return m.findFunc(ctx, collection, desc)
	}

	m.mu.RLock()
	out := append([]T(nil), m.items...)
	m.mu.RUnlock()

	if keys := desc.Sort(); len(keys) > 0 && m.lessFunc != nil {
		sort.SliceStable(out, func(i, j int) bool {
			for _, key := range keys {
				if m.lessFunc(out[i], out[j], key) {
					return true
				}
				if m.lessFunc(out[j], out[i], key) {
					return false
				}
			}
			return false
		})
	}

	if skip := desc.Skip(); skip != nil {
		if int(*skip) >= len(out) {
			out = out[:0]
		} else {
			out = out[*skip:]
		}
	}
	if limit := desc.Limit(); limit != nil && int(*limit) < len(out) {
		out = out[:*limit]
	}
	return out, nil
}

// Count returns the number of seeded items
func (m *Store[T]) Count(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error) {
	m.mu.Lock()
	m.countCalls++
	m.mu.Unlock()

	if m.countErr != nil {
		return 0, m.countErr
	}
	if m.countFunc != nil {
		return m.countFunc(ctx, collection, desc)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.items)), nil
}

// FindCalls returns how many times Find was invoked
func (m *Store[T]) FindCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findCalls
}

// CountCalls returns how many times Count was invoked
func (m *Store[T]) CountCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.countCalls
}
