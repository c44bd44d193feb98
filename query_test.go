/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/querystore/errors"
	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
	"github.com/suparena/querystore/store/mock"
)

type player struct {
	ID      string
	Country string
	Rating  int
}

// parserFor returns a stub parser handing out the given tree for any name.
func parserFor(tree *predicate.Tree) predicate.Parser {
	return predicate.ParserFunc(func(methodName string, domainType reflect.Type) (*predicate.Tree, error) {
		return tree, nil
	})
}

func byCountryTree() *predicate.Tree {
	return predicate.NewTree([]predicate.Clause{
		{Property: "Country", Operator: predicate.Equals},
	})
}

func seededStore(n int) *mock.Store[player] {
	st := mock.New[player]()
	players := make([]player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, player{ID: fmt.Sprintf("p%02d", i), Country: "CA", Rating: 1000 + i})
	}
	st.Seed(players...)
	return st
}

func newTestQuery(t *testing.T, shape querymodels.ReturnShape, st *mock.Store[player]) *Query[player] {
	t.Helper()
	method := querymodels.NewQueryMethod("FindByCountry", shape)
	q, err := NewQuery[player](method, parserFor(byCountryTree()), st, "players")
	require.NoError(t, err)
	return q
}

func TestCollectionExecution(t *testing.T) {
	tests := []struct {
		name  string
		seed  int
		count int
	}{
		{name: "ZeroMatches", seed: 0, count: 0},
		{name: "OneMatch", seed: 1, count: 1},
		{name: "ManyMatches", seed: 7, count: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := seededStore(tt.seed)
			q := newTestQuery(t, querymodels.ShapeCollection, st)

			items, err := q.Find(context.Background(), "CA")
			require.NoError(t, err)
			assert.Len(t, items, tt.count)

			// Store order preserved
			if tt.count > 1 {
				assert.Equal(t, "p00", items[0].ID)
				assert.Equal(t, fmt.Sprintf("p%02d", tt.count-1), items[tt.count-1].ID)
			}

			// Exactly one store read
			assert.Equal(t, 1, st.FindCalls())
			assert.Equal(t, 0, st.CountCalls())
		})
	}
}

func TestSingleExecution(t *testing.T) {
	t.Run("ZeroMatchesIsAbsentNotError", func(t *testing.T) {
		q := newTestQuery(t, querymodels.ShapeSingle, seededStore(0))

		entity, err := q.FindOne(context.Background(), "CA")
		require.NoError(t, err)
		assert.Nil(t, entity)
	})

	t.Run("OneMatch", func(t *testing.T) {
		q := newTestQuery(t, querymodels.ShapeSingle, seededStore(1))

		entity, err := q.FindOne(context.Background(), "CA")
		require.NoError(t, err)
		require.NotNil(t, entity)
		assert.Equal(t, "p00", entity.ID)
	})

	t.Run("ManyMatchesFirstWins", func(t *testing.T) {
		st := seededStore(5)
		q := newTestQuery(t, querymodels.ShapeSingle, st)

		entity, err := q.FindOne(context.Background(), "CA")
		require.NoError(t, err)
		require.NotNil(t, entity)
		assert.Equal(t, "p00", entity.ID)
		assert.Equal(t, 1, st.FindCalls())
	})
}

func TestPagedExecution(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		wantItems int
		wantFirst string
	}{
		{name: "FirstPage", page: 0, wantItems: 10, wantFirst: "p00"},
		{name: "PartialLastPage", page: 2, wantItems: 5, wantFirst: "p20"},
		{name: "BeyondRange", page: 3, wantItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := seededStore(25)
			q := newTestQuery(t, querymodels.ShapePage, st)

			req, err := querymodels.NewPageRequest(tt.page, 10)
			require.NoError(t, err)

			page, err := q.FindPage(context.Background(), "CA", req)
			require.NoError(t, err)

			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, int64(25), page.TotalCount)
			if tt.wantItems > 0 {
				assert.Equal(t, tt.wantFirst, page.Items[0].ID)
			}

			// Exactly two store reads: count, then fetch
			assert.Equal(t, 1, st.CountCalls())
			assert.Equal(t, 1, st.FindCalls())
		})
	}
}

func TestPagedExecutionWindowsTheFetchOnly(t *testing.T) {
	st := seededStore(25)
	q := newTestQuery(t, querymodels.ShapePage, st)

	var countDescs, findDescs []querymodels.Descriptor
	st.WithCountFunc(func(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error) {
		countDescs = append(countDescs, desc)
		return 25, nil
	})
	st.WithFindFunc(func(ctx context.Context, collection string, desc querymodels.Descriptor) ([]player, error) {
		findDescs = append(findDescs, desc)
		return nil, nil
	})

	req, err := querymodels.NewPageRequest(2, 10)
	require.NoError(t, err)
	_, err = q.FindPage(context.Background(), "CA", req)
	require.NoError(t, err)

	// The count descriptor carries no window
	require.Len(t, countDescs, 1)
	assert.Nil(t, countDescs[0].Skip())
	assert.Nil(t, countDescs[0].Limit())

	// The fetch descriptor carries the request's window
	require.Len(t, findDescs, 1)
	require.NotNil(t, findDescs[0].Skip())
	require.NotNil(t, findDescs[0].Limit())
	assert.Equal(t, int32(20), *findDescs[0].Skip())
	assert.Equal(t, int32(10), *findDescs[0].Limit())

	// Same filter semantics on both phases
	assert.Equal(t, countDescs[0].FilterExpression(), findDescs[0].FilterExpression())
}

func TestPagedExecutionAppliesRequestSort(t *testing.T) {
	st := seededStore(3)
	q := newTestQuery(t, querymodels.ShapePage, st)

	var fetched querymodels.Descriptor
	st.WithFindFunc(func(ctx context.Context, collection string, desc querymodels.Descriptor) ([]player, error) {
		fetched = desc
		return nil, nil
	})

	req, err := querymodels.NewPageRequest(0, 10, predicate.Sort{Property: "Rating", Descending: true})
	require.NoError(t, err)
	_, err = q.FindPage(context.Background(), "CA", req)
	require.NoError(t, err)

	require.Len(t, fetched.Sort(), 1)
	assert.Equal(t, "Rating", fetched.Sort()[0].Property)
	assert.True(t, fetched.Sort()[0].Descending)
}

func TestPageShapeWithoutPageRequestFails(t *testing.T) {
	st := seededStore(3)
	q := newTestQuery(t, querymodels.ShapePage, st)

	_, err := q.Execute(context.Background(), "CA")
	require.Error(t, err)
	assert.True(t, errors.IsMissingPageRequest(err))

	// No store read was issued
	assert.Equal(t, 0, st.FindCalls())
	assert.Equal(t, 0, st.CountCalls())
}

func TestDispatchWithTooFewArgumentsFails(t *testing.T) {
	st := seededStore(3)
	q := newTestQuery(t, querymodels.ShapeCollection, st)

	_, err := q.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgumentCount(err))
	assert.Equal(t, 0, st.FindCalls())
}

func TestStoreFailuresPropagateUnchanged(t *testing.T) {
	st := seededStore(3)
	st.WithFindError(errors.NewStoreTimeoutError("find", context.DeadlineExceeded))
	q := newTestQuery(t, querymodels.ShapeCollection, st)

	_, err := q.Execute(context.Background(), "CA")
	require.Error(t, err)
	assert.True(t, errors.IsStoreTimeout(err))
}

func TestPagedExecutionPropagatesCountFailure(t *testing.T) {
	st := seededStore(3)
	st.WithCountError(errors.NewStoreUnavailableError("count", assert.AnError))
	q := newTestQuery(t, querymodels.ShapePage, st)

	req, err := querymodels.NewPageRequest(0, 10)
	require.NoError(t, err)
	_, err = q.Execute(context.Background(), "CA", req)
	require.Error(t, err)
	assert.True(t, errors.IsStoreUnavailable(err))

	// The fetch phase never ran
	assert.Equal(t, 0, st.FindCalls())
}

func TestRepeatedDispatchIsIdempotent(t *testing.T) {
	st := seededStore(25)
	q := newTestQuery(t, querymodels.ShapePage, st)

	req, err := querymodels.NewPageRequest(1, 10)
	require.NoError(t, err)

	first, err := q.FindPage(context.Background(), "CA", req)
	require.NoError(t, err)
	second, err := q.FindPage(context.Background(), "CA", req)
	require.NoError(t, err)

	assert.Equal(t, first.TotalCount, second.TotalCount)
	assert.Equal(t, first.Items, second.Items)
}

func TestExecuteReturnShapes(t *testing.T) {
	st := seededStore(2)

	collection := newTestQuery(t, querymodels.ShapeCollection, st)
	result, err := collection.Execute(context.Background(), "CA")
	require.NoError(t, err)
	if _, ok := result.([]player); !ok {
		t.Fatalf("Expected []player, got %T", result)
	}

	single := newTestQuery(t, querymodels.ShapeSingle, st)
	result, err = single.Execute(context.Background(), "CA")
	require.NoError(t, err)
	if _, ok := result.(*player); !ok {
		t.Fatalf("Expected *player, got %T", result)
	}

	paged := newTestQuery(t, querymodels.ShapePage, st)
	req, err := querymodels.NewPageRequest(0, 10)
	require.NoError(t, err)
	result, err = paged.Execute(context.Background(), "CA", req)
	require.NoError(t, err)
	if _, ok := result.(*querymodels.Page[player]); !ok {
		t.Fatalf("Expected *querymodels.Page[player], got %T", result)
	}
}

func TestTypedHelpersRejectWrongShape(t *testing.T) {
	st := seededStore(2)
	q := newTestQuery(t, querymodels.ShapeCollection, st)

	if _, err := q.FindOne(context.Background(), "CA"); err == nil {
		t.Error("FindOne should reject a collection-shaped method")
	}
	if _, err := q.FindPage(context.Background(), "CA"); err == nil {
		t.Error("FindPage should reject a collection-shaped method")
	}
}

func TestNewQueryPropagatesParserFailure(t *testing.T) {
	parser := predicate.ParserFunc(func(methodName string, domainType reflect.Type) (*predicate.Tree, error) {
		return nil, errors.NewUnparseableMethodNameError(methodName, "no recognized prefix")
	})

	method := querymodels.NewQueryMethod("GimmeStuff", querymodels.ShapeSingle)
	_, err := NewQuery[player](method, parser, mock.New[player](), "players")
	require.Error(t, err)
	assert.True(t, errors.IsUnparseableMethodName(err))
}
