/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querymodels

import (
	"fmt"

	"github.com/suparena/querystore/predicate"
)

// PageRequest asks for one bounded window of a derived query's matches.
// Page indexes are zero-based and Size must be positive.
type PageRequest struct {
	page int
	size int
	sort []predicate.Sort
}

// NewPageRequest creates a PageRequest for the given zero-based page index
// and page size, with an optional sort order.
func NewPageRequest(page, size int, sort ...predicate.Sort) (*PageRequest, error) {
	if page < 0 {
		return nil, fmt.Errorf("page index must not be negative, got %d", page)
	}
	if size <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", size)
	}
	r := &PageRequest{page: page, size: size, sort: make([]predicate.Sort, len(sort))}
	copy(r.sort, sort)
	return r, nil
}

// Page returns the zero-based page index.
func (r *PageRequest) Page() int {
	return r.page
}

// Size returns the page size.
func (r *PageRequest) Size() int {
	return r.size
}

// Sort returns the requested sort order, if any.
func (r *PageRequest) Sort() []predicate.Sort {
	out := make([]predicate.Sort, len(r.sort))
	copy(out, r.sort)
	return out
}

// Skip returns the number of matching documents to skip before the window,
// i.e. page index times page size.
func (r *PageRequest) Skip() int32 {
	return int32(r.page) * int32(r.size)
}

// Page is one bounded window of a derived query's result set, paired with
// the request that produced it and the total number of matches across all
// pages. len(Items) never exceeds the requested size, and TotalCount is
// never less than len(Items).
type Page[T any] struct {
	Items      []T
	Request    PageRequest
	TotalCount int64
}

// NewPage creates a Page from a fetched window, its request and the total
// matching count.
func NewPage[T any](items []T, request PageRequest, totalCount int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Request: request, TotalCount: totalCount}
}

// TotalPages returns how many pages of the requested size the full result
// set spans.
func (p *Page[T]) TotalPages() int {
	if p.TotalCount == 0 {
		return 0
	}
	size := int64(p.Request.Size())
	return int((p.TotalCount + size - 1) / size)
}

// HasNext reports whether a later page would contain at least one item.
func (p *Page[T]) HasNext() bool {
	return p.Request.Page()+1 < p.TotalPages()
}
