/*
Package store defines the document store contract a derived query executes against.

The single interface is Store[T], two read operations over one collection:

	type Store[T any] interface {
	    Find(ctx context.Context, collection string, desc querymodels.Descriptor) ([]T, error)
	    Count(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error)
	}

Implementations:
  - ddb: DynamoDB implementation scanning with the descriptor's filter expression
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
keeping the execution core independent of any one storage backend.
*/
package store
