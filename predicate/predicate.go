/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package predicate

import "reflect"

// Operator identifies the comparison a predicate clause applies to its property.
// The set is closed: translators type-switch over it and reject anything else.
type Operator int

const (
	Equals Operator = iota
	NotEquals
	GreaterThan
	GreaterThanEqual
	LessThan
	LessThanEqual
	Between
	In
	StartingWith
	Containing
	IsNull
	NotNull
)

// String returns the operator keyword as it appears in a derived method name.
func (o Operator) String() string {
	switch o {
	case Equals:
		return "Equals"
	case NotEquals:
		return "NotEquals"
	case GreaterThan:
		return "GreaterThan"
	case GreaterThanEqual:
		return "GreaterThanEqual"
	case LessThan:
		return "LessThan"
	case LessThanEqual:
		return "LessThanEqual"
	case Between:
		return "Between"
	case In:
		return "In"
	case StartingWith:
		return "StartingWith"
	case Containing:
		return "Containing"
	case IsNull:
		return "IsNull"
	case NotNull:
		return "NotNull"
	default:
		return "Unknown"
	}
}

// ArgumentCount returns how many bound values the operator consumes from an
// invocation's parameter list.
func (o Operator) ArgumentCount() int {
	switch o {
	case Between:
		return 2
	case IsNull, NotNull:
		return 0
	default:
		return 1
	}
}

// Clause is a single predicate in a derived query: a property compared with
// an operator against values supplied at invocation time.
type Clause struct {
	Property string
	Operator Operator
}

// Sort describes one key of the ordering a derived query requests.
type Sort struct {
	Property   string
	Descending bool
}

// Tree is the ordered predicate chain derived from a declarative method name,
// combined with the ordering the name requests. A Tree is immutable once
// built; the parser produces it and the descriptor factory only reads it.
type Tree struct {
	clauses []Clause
	sort    []Sort
}

// NewTree builds a Tree from the given clauses and optional sort order.
// The inputs are copied so later mutation by the caller cannot leak in.
func NewTree(clauses []Clause, sort ...Sort) *Tree {
	t := &Tree{
		clauses: make([]Clause, len(clauses)),
		sort:    make([]Sort, len(sort)),
	}
	copy(t.clauses, clauses)
	copy(t.sort, sort)
	return t
}

// Clauses returns the predicate chain in declaration order.
func (t *Tree) Clauses() []Clause {
	out := make([]Clause, len(t.clauses))
	copy(out, t.clauses)
	return out
}

// Sort returns the ordering derived from the method name, if any.
func (t *Tree) Sort() []Sort {
	out := make([]Sort, len(t.sort))
	copy(out, t.sort)
	return out
}

// RequiredArguments returns the number of bound values an invocation must
// supply to satisfy every clause in the chain.
func (t *Tree) RequiredArguments() int {
	n := 0
	for _, c := range t.clauses {
		n += c.Operator.ArgumentCount()
	}
	return n
}

// Parser derives a predicate tree from a declarative method name and the
// domain type the method operates on. Implementations fail with
// errors.ErrUnparseableMethodName when the name does not match the
// recognized grammar. Parsing itself is outside this library; callers plug
// in their parser of choice.
type Parser interface {
	Parse(methodName string, domainType reflect.Type) (*Tree, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(methodName string, domainType reflect.Type) (*Tree, error)

// Parse calls f.
func (f ParserFunc) Parse(methodName string, domainType reflect.Type) (*Tree, error) {
	return f(methodName, domainType)
}
