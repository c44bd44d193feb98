/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"context"

	"github.com/suparena/querystore/querymodels"
	"github.com/suparena/querystore/store"
)

// The three execution strategies turn a descriptor into the result shape a
// method declares. They form a closed set, selected once per dispatch by
// the method's return shape; each is stateless and executes exactly once.

// collectionExecution reads every match and returns []T in store order.
// Zero matches yield an empty slice, never an error.
type collectionExecution[T any] struct {
	store      store.Store[T]
	collection string
}

func (e collectionExecution[T]) execute(ctx context.Context, desc querymodels.Descriptor) (any, error) {
	items, err := e.store.Find(ctx, e.collection, desc)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// singleExecution reads the matching collection and returns the first
// entity, or a nil *T when nothing matched. Extra matches beyond the first
// are silently ignored; first-match-wins is the documented policy, not a
// defect.
type singleExecution[T any] struct {
	store      store.Store[T]
	collection string
}

func (e singleExecution[T]) execute(ctx context.Context, desc querymodels.Descriptor) (any, error) {
	items, err := e.store.Find(ctx, e.collection, desc)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return (*T)(nil), nil
	}
	first := items[0]
	return &first, nil
}

// pagedExecution runs the two-phase paging protocol: count on a freshly
// created descriptor carrying no window, then fetch on the original
// descriptor with the request's skip, limit and sort applied. The phases
// are independent reads; the count may be stale relative to the window
// under concurrent writes.
type pagedExecution[T any] struct {
	store      store.Store[T]
	collection string
	factory    *descriptorFactory
	request    *querymodels.PageRequest
}

func (e pagedExecution[T]) execute(ctx context.Context, desc querymodels.Descriptor) (any, error) {
	countDesc, err := e.factory.Create()
	if err != nil {
		return nil, err
	}
	total, err := e.store.Count(ctx, e.collection, countDesc)
	if err != nil {
		return nil, err
	}

	window := desc.WithPagination(e.request.Skip(), int32(e.request.Size()))
	if sort := e.request.Sort(); len(sort) > 0 {
		window = window.WithSort(sort)
	}
	items, err := e.store.Find(ctx, e.collection, window)
	if err != nil {
		return nil, err
	}

	return querymodels.NewPage(items, *e.request, total), nil
}
