/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"context"
	"fmt"
	"reflect"

	"github.com/suparena/querystore/errors"
	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
	"github.com/suparena/querystore/store"
)

// Query is one derived query bound to a domain type: the method it was
// derived from, the predicate tree parsed from the method name, and the
// store and collection it executes against. A Query is built once and
// reused; every Execute operates on its own accessor and descriptor, so a
// Query is safe for concurrent use.
type Query[T any] struct {
	method     querymodels.QueryMethod
	tree       *predicate.Tree
	store      store.Store[T]
	collection string
}

// NewQuery derives a query from the given method. The method name is parsed
// into a predicate tree immediately; an unparseable name fails here, not at
// execution time. The collection executes against is resolved via the
// domain type's collection registration.
func NewQuery[T any](method querymodels.QueryMethod, parser predicate.Parser, st store.Store[T], collection string) (*Query[T], error) {
	if parser == nil {
		return nil, fmt.Errorf("parser must not be nil")
	}
	if st == nil {
		return nil, fmt.Errorf("store must not be nil")
	}
	if collection == "" {
		return nil, fmt.Errorf("collection must not be empty")
	}

	var zero T
	tree, err := parser.Parse(method.Name(), reflect.TypeOf(zero))
	if err != nil {
		return nil, err
	}

	return &Query[T]{
		method:     method,
		tree:       tree,
		store:      st,
		collection: collection,
	}, nil
}

// Method returns the query method this query was derived from.
func (q *Query[T]) Method() querymodels.QueryMethod {
	return q.method
}

// Execute runs the derived query with the given invocation parameters and
// returns a result shaped per the method's declared return shape: []T for
// a collection method, *T (possibly nil) for a single-entity method, and
// *querymodels.Page[T] for a page method.
//
// Collection and single methods issue exactly one store read; page methods
// issue exactly two (count, then fetch).
func (q *Query[T]) Execute(ctx context.Context, params ...any) (any, error) {
	accessor := NewParameterAccessor(params...)
	factory := newDescriptorFactory(q.method, q.tree, accessor)

	desc, err := factory.Create()
	if err != nil {
		return nil, err
	}

	switch q.method.Shape() {
	case querymodels.ShapeCollection:
		return collectionExecution[T]{store: q.store, collection: q.collection}.execute(ctx, desc)

	case querymodels.ShapePage:
		request := accessor.PageRequest()
		if request == nil {
			return nil, errors.NewMissingPageRequestError(q.method.Name())
		}
		return pagedExecution[T]{
			store:      q.store,
			collection: q.collection,
			factory:    factory,
			request:    request,
		}.execute(ctx, desc)

	default:
		return singleExecution[T]{store: q.store, collection: q.collection}.execute(ctx, desc)
	}
}

// Find executes a collection method and returns the matching entities.
func (q *Query[T]) Find(ctx context.Context, params ...any) ([]T, error) {
	if !q.method.IsCollectionQuery() {
		return nil, fmt.Errorf("method %q does not return a collection", q.method.Name())
	}
	result, err := q.Execute(ctx, params...)
	if err != nil {
		return nil, err
	}
	return result.([]T), nil
}

// FindOne executes a single-entity method. The result is nil when nothing
// matched; that is a successful, well-defined outcome, not an error.
func (q *Query[T]) FindOne(ctx context.Context, params ...any) (*T, error) {
	if !q.method.IsSingleQuery() {
		return nil, fmt.Errorf("method %q does not return a single entity", q.method.Name())
	}
	result, err := q.Execute(ctx, params...)
	if err != nil {
		return nil, err
	}
	return result.(*T), nil
}

// FindPage executes a page method and returns the requested window with its
// total count.
func (q *Query[T]) FindPage(ctx context.Context, params ...any) (*querymodels.Page[T], error) {
	if !q.method.IsPageQuery() {
		return nil, fmt.Errorf("method %q does not return a page", q.method.Name())
	}
	result, err := q.Execute(ctx, params...)
	if err != nil {
		return nil, err
	}
	return result.(*querymodels.Page[T]), nil
}
