/*
Package errors provides semantic error types for the QueryStore library.

The package defines the failure taxonomy of a derived-query dispatch with
specific types that can be checked using the standard errors.Is() function
or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidArgumentCount  = errors.New("invalid argument count")
	    ErrUnsupportedPredicate  = errors.New("unsupported predicate")
	    ErrUnparseableMethodName = errors.New("unparseable method name")
	    ErrMissingPageRequest    = errors.New("missing page request")
	    ErrStoreUnavailable      = errors.New("store unavailable")
	    ErrStoreTimeout          = errors.New("store timeout")
	    ErrNoCollection          = errors.New("no collection registered for type")
	)

Usage:

	result, err := repo.Dispatch(ctx, method, args...)
	if errors.IsMissingPageRequest(err) {
	    // the method returns a page but no page request was supplied
	}

None of these conditions are recovered inside the library: every failure
from a collaborator or from descriptor construction propagates unchanged
to the dispatch caller. An empty collection or an absent single entity is
a successful result, never an error.
*/
package errors
