/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querymodels

// ReturnShape classifies what a derived query method declares to return.
// Exactly one classification holds for any method.
type ReturnShape int

const (
	// ShapeSingle returns the first matching entity, or an absent result.
	ShapeSingle ReturnShape = iota
	// ShapeCollection returns every matching entity in store order.
	ShapeCollection
	// ShapePage returns a bounded window of matches plus the total count.
	ShapePage
)

// String returns a readable name for the shape.
func (s ReturnShape) String() string {
	switch s {
	case ShapeSingle:
		return "Single"
	case ShapeCollection:
		return "Collection"
	case ShapePage:
		return "Page"
	default:
		return "Unknown"
	}
}

// QueryMethod describes a derived query method: the declarative name its
// predicate chain is parsed from, and the return shape that selects the
// execution strategy. The domain type is carried by the Query[T] the method
// is bound to.
type QueryMethod struct {
	name  string
	shape ReturnShape
}

// NewQueryMethod creates a QueryMethod with the given name and return shape.
func NewQueryMethod(name string, shape ReturnShape) QueryMethod {
	return QueryMethod{name: name, shape: shape}
}

// Name returns the declarative method name.
func (m QueryMethod) Name() string {
	return m.name
}

// Shape returns the declared return shape.
func (m QueryMethod) Shape() ReturnShape {
	return m.shape
}

// IsCollectionQuery reports whether the method returns a collection.
func (m QueryMethod) IsCollectionQuery() bool {
	return m.shape == ShapeCollection
}

// IsPageQuery reports whether the method returns a page.
func (m QueryMethod) IsPageQuery() bool {
	return m.shape == ShapePage
}

// IsSingleQuery reports whether the method returns a single entity.
func (m QueryMethod) IsSingleQuery() bool {
	return m.shape == ShapeSingle
}
