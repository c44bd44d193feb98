/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"github.com/suparena/querystore/querymodels"
)

// ParameterAccessor wraps the raw positional arguments of one invocation.
// It separates the values that bind to predicate clauses from the page
// request, which may appear anywhere in the parameter list (by value or by
// pointer) and never binds to a clause. An accessor lives for exactly one
// dispatch.
type ParameterAccessor struct {
	bound []any
	page  *querymodels.PageRequest
}

// NewParameterAccessor wraps the given invocation parameters. The first
// page request found is extracted; every page request is excluded from the
// bound values.
func NewParameterAccessor(params ...any) *ParameterAccessor {
	a := &ParameterAccessor{}
	for _, p := range params {
		switch v := p.(type) {
		case *querymodels.PageRequest:
			if a.page == nil {
				a.page = v
			}
		case querymodels.PageRequest:
			if a.page == nil {
				req := v
				a.page = &req
			}
		default:
			a.bound = append(a.bound, p)
		}
	}
	return a
}

// PageRequest returns the invocation's page request, or nil when none was
// supplied.
func (a *ParameterAccessor) PageRequest() *querymodels.PageRequest {
	return a.page
}

// BoundValues returns the values available to bind predicate clauses, in
// declaration order.
func (a *ParameterAccessor) BoundValues() []any {
	return a.bound
}
