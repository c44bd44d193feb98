/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"

	"github.com/suparena/querystore/querymodels"
)

// Store is the read-only document store collaborator a derived query
// executes against. Implementations must be safe for concurrent reads;
// QueryStore adds no coordination of its own. Cancellation and timeouts
// travel through ctx and surface as errors.ErrStoreTimeout.
type Store[T any] interface {
	// Find returns every document in collection matching desc, in store
	// order, honoring the descriptor's skip/limit window and sort order
	// when present. Zero matches yield an empty slice, not an error.
	Find(ctx context.Context, collection string, desc querymodels.Descriptor) ([]T, error)

	// Count returns the total number of documents in collection matching
	// desc, ignoring any window.
	Count(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error)
}
