/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/querystore/errors"
	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
	"github.com/suparena/querystore/registry"
	"github.com/suparena/querystore/store"
)

// Repository manages the derived queries of one domain type T. Queries are
// derived on first use and cached by method name; the collection they
// execute against is resolved from the registry once, when the repository
// is created.
type Repository[T any] struct {
	mu      sync.RWMutex
	parser  predicate.Parser
	store   store.Store[T]
	queries map[string]*Query[T]

	collection string
}

// NewRepository creates a Repository for type T. It fails with
// errors.ErrNoCollection when no collection is registered for T.
func NewRepository[T any](parser predicate.Parser, st store.Store[T]) (*Repository[T], error) {
	if parser == nil {
		return nil, fmt.Errorf("parser must not be nil")
	}
	if st == nil {
		return nil, fmt.Errorf("store must not be nil")
	}

	var zero T
	domainType := reflect.TypeOf(zero)
	collection, ok := registry.CollectionFor(domainType)
	if !ok {
		return nil, errors.NewNoCollectionError(domainType.String())
	}

	return &Repository[T]{
		parser:     parser,
		store:      st,
		queries:    make(map[string]*Query[T]),
		collection: collection,
	}, nil
}

// Collection returns the collection name this repository executes against.
func (r *Repository[T]) Collection() string {
	return r.collection
}

// Derive returns the query for the given method, parsing and caching it on
// first use. Deriving the same name again with a different return shape is
// an error.
func (r *Repository[T]) Derive(method querymodels.QueryMethod) (*Query[T], error) {
	r.mu.RLock()
	cached, ok := r.queries[method.Name()]
	r.mu.RUnlock()
	if ok {
		if cached.Method().Shape() != method.Shape() {
			return nil, fmt.Errorf("method %q already derived with shape %s", method.Name(), cached.Method().Shape())
		}
		return cached, nil
	}

	q, err := NewQuery(method, r.parser, r.store, r.collection)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.queries[method.Name()]; ok {
		return existing, nil
	}
	r.queries[method.Name()] = q
	return q, nil
}

// Dispatch derives (or reuses) the query for method and executes it with
// the given invocation parameters.
func (r *Repository[T]) Dispatch(ctx context.Context, method querymodels.QueryMethod, params ...any) (any, error) {
	q, err := r.Derive(method)
	if err != nil {
		return nil, err
	}
	return q.Execute(ctx, params...)
}

// Remove drops a cached derived query by method name.
func (r *Repository[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.queries[name]; !ok {
		return fmt.Errorf("no derived query named %q", name)
	}
	delete(r.queries, name)
	return nil
}
