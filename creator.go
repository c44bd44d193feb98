/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/querystore/errors"
	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
)

// descriptorFactory builds store-native descriptors from a predicate tree
// and the bound values of one invocation. Create may be called more than
// once; every call renders a fresh, independent descriptor from the same
// inputs. The paged strategy relies on this to derive its count-phase
// descriptor without observing the window attached for the fetch phase.
type descriptorFactory struct {
	method   querymodels.QueryMethod
	tree     *predicate.Tree
	accessor *ParameterAccessor
}

func newDescriptorFactory(method querymodels.QueryMethod, tree *predicate.Tree, accessor *ParameterAccessor) *descriptorFactory {
	return &descriptorFactory{method: method, tree: tree, accessor: accessor}
}

// Create renders the predicate chain into a filter expression with #pN name
// placeholders and :vN value placeholders, in the clause declaration order.
func (f *descriptorFactory) Create() (querymodels.Descriptor, error) {
	clauses := f.tree.Clauses()
	bound := f.accessor.BoundValues()

	if required := f.tree.RequiredArguments(); len(bound) < required {
		return querymodels.Descriptor{}, errors.NewInvalidArgumentCountError(f.method.Name(), required, len(bound))
	}

	exprParts := make([]string, 0, len(clauses))
	names := make(map[string]string, len(clauses))
	values := make(map[string]types.AttributeValue)

	arg := 0
	next := 0
	for i, clause := range clauses {
		nameph := fmt.Sprintf("#p%d", i)
		names[nameph] = clause.Property

		part, err := renderClause(clause, nameph, bound, &arg, &next, values)
		if err != nil {
			return querymodels.Descriptor{}, err
		}
		exprParts = append(exprParts, part)
	}

	return querymodels.NewDescriptor(strings.Join(exprParts, " AND "), names, values, f.tree.Sort()), nil
}

// renderClause emits one clause of the filter expression, consuming bound
// values and registering value placeholders as it goes.
func renderClause(clause predicate.Clause, nameph string, bound []any, arg, next *int, values map[string]types.AttributeValue) (string, error) {
	op := clause.Operator

	switch op {
	case predicate.Equals, predicate.NotEquals,
		predicate.GreaterThan, predicate.GreaterThanEqual,
		predicate.LessThan, predicate.LessThanEqual:
		ph, err := bindValue(clause, bound, arg, next, values)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", nameph, comparator(op), ph), nil

	case predicate.Between:
		lo, err := bindValue(clause, bound, arg, next, values)
		if err != nil {
			return "", err
		}
		hi, err := bindValue(clause, bound, arg, next, values)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", nameph, lo, hi), nil

	case predicate.In:
		list := bound[*arg]
		*arg++
		rv := reflect.ValueOf(list)
		if list == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return "", errors.NewUnsupportedPredicateError(clause.Property, op.String(), "argument must be a slice")
		}
		if rv.Len() == 0 {
			return "", errors.NewUnsupportedPredicateError(clause.Property, op.String(), "argument must not be empty")
		}
		phs := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			av, err := marshalValue(clause, rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			ph := fmt.Sprintf(":v%d", *next)
			*next++
			values[ph] = av
			phs = append(phs, ph)
		}
		return fmt.Sprintf("%s IN (%s)", nameph, strings.Join(phs, ", ")), nil

	case predicate.StartingWith:
		ph, err := bindValue(clause, bound, arg, next, values)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("begins_with(%s, %s)", nameph, ph), nil

	case predicate.Containing:
		ph, err := bindValue(clause, bound, arg, next, values)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("contains(%s, %s)", nameph, ph), nil

	case predicate.IsNull:
		return fmt.Sprintf("attribute_not_exists(%s)", nameph), nil

	case predicate.NotNull:
		return fmt.Sprintf("attribute_exists(%s)", nameph), nil

	default:
		return "", errors.NewUnsupportedPredicateError(clause.Property, op.String(), "")
	}
}

// bindValue consumes the next bound value, marshals it and registers its
// :vN placeholder.
func bindValue(clause predicate.Clause, bound []any, arg, next *int, values map[string]types.AttributeValue) (string, error) {
	av, err := marshalValue(clause, bound[*arg])
	if err != nil {
		return "", err
	}
	*arg++
	ph := fmt.Sprintf(":v%d", *next)
	*next++
	values[ph] = av
	return ph, nil
}

func marshalValue(clause predicate.Clause, v any) (types.AttributeValue, error) {
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return nil, errors.NewUnsupportedPredicateError(clause.Property, clause.Operator.String(),
			fmt.Sprintf("cannot marshal value: %v", err))
	}
	return av, nil
}

func comparator(op predicate.Operator) string {
	switch op {
	case predicate.NotEquals:
		return "<>"
	case predicate.GreaterThan:
		return ">"
	case predicate.GreaterThanEqual:
		return ">="
	case predicate.LessThan:
		return "<"
	case predicate.LessThanEqual:
		return "<="
	default:
		return "="
	}
}
