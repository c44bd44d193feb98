/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querymodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/querystore/predicate"
)

// Descriptor is the store-native form of one derived query: a DynamoDB
// filter expression with its attribute-name and attribute-value
// placeholders, plus the sort order and the optional skip/limit window.
//
// A Descriptor is an immutable value. WithPagination and WithSort return
// derived copies, so the descriptor handed to a count phase can never
// observe the windowing applied for the fetch phase. The placeholder maps
// are built once by the descriptor factory and are never written after
// construction.
type Descriptor struct {
	filterExpression string
	names            map[string]string
	values           map[string]types.AttributeValue
	sort             []predicate.Sort
	skip             *int32
	limit            *int32
}

// NewDescriptor creates a Descriptor from a rendered filter expression, its
// placeholder maps and the sort order derived from the method name. Callers
// must not modify the maps after handing them over.
func NewDescriptor(filterExpression string, names map[string]string, values map[string]types.AttributeValue, sort []predicate.Sort) Descriptor {
	s := make([]predicate.Sort, len(sort))
	copy(s, sort)
	return Descriptor{
		filterExpression: filterExpression,
		names:            names,
		values:           values,
		sort:             s,
	}
}

// FilterExpression returns the rendered filter expression. Empty when the
// predicate chain has no clauses (a find-all query).
func (d Descriptor) FilterExpression() string {
	return d.filterExpression
}

// ExpressionAttributeNames returns the #pN placeholder map. Callers must
// treat the returned map as read-only.
func (d Descriptor) ExpressionAttributeNames() map[string]string {
	return d.names
}

// ExpressionAttributeValues returns the :vN placeholder map. Callers must
// treat the returned map as read-only.
func (d Descriptor) ExpressionAttributeValues() map[string]types.AttributeValue {
	return d.values
}

// Sort returns the sort order the store should apply, if any.
func (d Descriptor) Sort() []predicate.Sort {
	out := make([]predicate.Sort, len(d.sort))
	copy(out, d.sort)
	return out
}

// Skip returns how many matching documents the store should skip before the
// window, or nil when no window applies.
func (d Descriptor) Skip() *int32 {
	return d.skip
}

// Limit returns the window size, or nil when no window applies.
func (d Descriptor) Limit() *int32 {
	return d.limit
}

// WithPagination returns a copy of the descriptor with the given skip and
// limit attached. The receiver is unchanged.
func (d Descriptor) WithPagination(skip, limit int32) Descriptor {
	out := d
	out.skip = &skip
	out.limit = &limit
	return out
}

// WithSort returns a copy of the descriptor with the given sort order,
// replacing any order derived from the method name. The receiver is
// unchanged.
func (d Descriptor) WithSort(sort []predicate.Sort) Descriptor {
	out := d
	out.sort = make([]predicate.Sort, len(sort))
	copy(out.sort, sort)
	return out
}
