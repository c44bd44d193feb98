/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/querystore/errors"
	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
)

func factoryFor(tree *predicate.Tree, params ...any) *descriptorFactory {
	method := querymodels.NewQueryMethod("FindByTest", querymodels.ShapeCollection)
	return newDescriptorFactory(method, tree, NewParameterAccessor(params...))
}

func TestCreateRendersComparisonClauses(t *testing.T) {
	tree := predicate.NewTree([]predicate.Clause{
		{Property: "Country", Operator: predicate.Equals},
		{Property: "Rating", Operator: predicate.GreaterThan},
	})

	desc, err := factoryFor(tree, "CA", 1800).Create()
	require.NoError(t, err)

	assert.Equal(t, "#p0 = :v0 AND #p1 > :v1", desc.FilterExpression())
	assert.Equal(t, map[string]string{"#p0": "Country", "#p1": "Rating"}, desc.ExpressionAttributeNames())

	country := desc.ExpressionAttributeValues()[":v0"].(*types.AttributeValueMemberS)
	assert.Equal(t, "CA", country.Value)
	rating := desc.ExpressionAttributeValues()[":v1"].(*types.AttributeValueMemberN)
	assert.Equal(t, "1800", rating.Value)
}

func TestCreateRendersOperatorVariants(t *testing.T) {
	tests := []struct {
		name     string
		clause   predicate.Clause
		params   []any
		expected string
	}{
		{
			name:     "NotEquals",
			clause:   predicate.Clause{Property: "Status", Operator: predicate.NotEquals},
			params:   []any{"retired"},
			expected: "#p0 <> :v0",
		},
		{
			name:     "Between",
			clause:   predicate.Clause{Property: "Rating", Operator: predicate.Between},
			params:   []any{1000, 2000},
			expected: "#p0 BETWEEN :v0 AND :v1",
		},
		{
			name:     "In",
			clause:   predicate.Clause{Property: "Country", Operator: predicate.In},
			params:   []any{[]string{"CA", "US", "MX"}},
			expected: "#p0 IN (:v0, :v1, :v2)",
		},
		{
			name:     "StartingWith",
			clause:   predicate.Clause{Property: "Name", Operator: predicate.StartingWith},
			params:   []any{"Al"},
			expected: "begins_with(#p0, :v0)",
		},
		{
			name:     "Containing",
			clause:   predicate.Clause{Property: "Name", Operator: predicate.Containing},
			params:   []any{"berto"},
			expected: "contains(#p0, :v0)",
		},
		{
			name:     "IsNull",
			clause:   predicate.Clause{Property: "DeletedAt", Operator: predicate.IsNull},
			expected: "attribute_not_exists(#p0)",
		},
		{
			name:     "NotNull",
			clause:   predicate.Clause{Property: "Email", Operator: predicate.NotNull},
			expected: "attribute_exists(#p0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := predicate.NewTree([]predicate.Clause{tt.clause})
			desc, err := factoryFor(tree, tt.params...).Create()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, desc.FilterExpression())
		})
	}
}

func TestCreateCarriesTreeSort(t *testing.T) {
	tree := predicate.NewTree(
		[]predicate.Clause{{Property: "Country", Operator: predicate.Equals}},
		predicate.Sort{Property: "Rating", Descending: true},
	)

	desc, err := factoryFor(tree, "CA").Create()
	require.NoError(t, err)

	require.Len(t, desc.Sort(), 1)
	assert.Equal(t, "Rating", desc.Sort()[0].Property)
	assert.True(t, desc.Sort()[0].Descending)
}

func TestCreateFailsOnTooFewArguments(t *testing.T) {
	tree := predicate.NewTree([]predicate.Clause{
		{Property: "Country", Operator: predicate.Equals},
		{Property: "Rating", Operator: predicate.Between},
	})

	_, err := factoryFor(tree, "CA", 1000).Create()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentCount(err))

	var typed *errors.InvalidArgumentCountError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, 3, typed.Required)
	assert.Equal(t, 2, typed.Supplied)
}

func TestCreateFailsOnUnsupportedInArgument(t *testing.T) {
	tree := predicate.NewTree([]predicate.Clause{
		{Property: "Country", Operator: predicate.In},
	})

	_, err := factoryFor(tree, "not-a-slice").Create()
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedPredicate(err))

	_, err = factoryFor(tree, []string{}).Create()
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedPredicate(err))
}

func TestCreateFailsOnUnknownOperator(t *testing.T) {
	tree := predicate.NewTree([]predicate.Clause{
		{Property: "Location", Operator: predicate.Operator(99)},
	})

	_, err := factoryFor(tree, "here").Create()
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedPredicate(err))
}

func TestCreateTwiceYieldsIndependentEquivalentDescriptors(t *testing.T) {
	tree := predicate.NewTree([]predicate.Clause{
		{Property: "Country", Operator: predicate.Equals},
	})
	factory := factoryFor(tree, "CA")

	first, err := factory.Create()
	require.NoError(t, err)
	second, err := factory.Create()
	require.NoError(t, err)

	// Equivalent fetch semantics
	assert.Equal(t, first, second)

	// Windowing one must not leak into the other
	windowed := first.WithPagination(10, 10)
	assert.Nil(t, second.Skip())
	assert.Nil(t, second.Limit())
	require.NotNil(t, windowed.Skip())

	// The two descriptors own separate placeholder maps
	third, err := factory.Create()
	require.NoError(t, err)
	for k := range first.ExpressionAttributeValues() {
		delete(first.ExpressionAttributeValues(), k)
	}
	assert.NotEmpty(t, third.ExpressionAttributeValues())
	assert.NotEmpty(t, second.ExpressionAttributeValues())
}
