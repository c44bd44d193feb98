/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/querystore/querymodels"
)

func TestAccessorSeparatesPageRequest(t *testing.T) {
	req, err := querymodels.NewPageRequest(1, 20)
	require.NoError(t, err)

	a := NewParameterAccessor("CA", 30, req)

	require.NotNil(t, a.PageRequest())
	assert.Equal(t, 1, a.PageRequest().Page())
	assert.Equal(t, []any{"CA", 30}, a.BoundValues())
}

func TestAccessorAcceptsPageRequestByValue(t *testing.T) {
	req, err := querymodels.NewPageRequest(2, 5)
	require.NoError(t, err)

	a := NewParameterAccessor(*req, "CA")

	require.NotNil(t, a.PageRequest())
	assert.Equal(t, 2, a.PageRequest().Page())
	assert.Equal(t, []any{"CA"}, a.BoundValues())
}

func TestAccessorWithoutPageRequest(t *testing.T) {
	a := NewParameterAccessor("CA")
	assert.Nil(t, a.PageRequest())
	assert.Equal(t, []any{"CA"}, a.BoundValues())
}

func TestAccessorEmptyInvocation(t *testing.T) {
	a := NewParameterAccessor()
	assert.Nil(t, a.PageRequest())
	assert.Empty(t, a.BoundValues())
}
