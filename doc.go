/*
Package querystore derives queries from declarative method signatures and
executes them against a document-oriented data store, shaping results
according to the method's declared return type: a single entity, an
unbounded collection, or a page with a total count.

A method name such as FindByCountryAndAgeGreaterThan encodes a predicate
chain. An external parser turns the name into a predicate tree; the
descriptor factory binds the invocation's argument values to the tree's
clauses and renders a store-native query descriptor; one of three execution
strategies runs it against the store collaborator.

Basic Usage:

	// Register where Player documents live
	registry.RegisterCollection[Player]("players")

	// Create a repository over a store and a method-name parser
	st, _ := ddb.NewDynamoStore[Player](accessKey, secretKey, region)
	repo, _ := querystore.NewRepository[Player](parser, st)

	// Dispatch derived queries
	method := querymodels.NewQueryMethod("FindByCountry", querymodels.ShapeCollection)
	result, err := repo.Dispatch(ctx, method, "CA")

	// Paged methods take a page request among their parameters
	req, _ := querymodels.NewPageRequest(0, 10)
	method = querymodels.NewQueryMethod("FindByCountry", querymodels.ShapePage)
	page, err := repo.Dispatch(ctx, method, "CA", req)

Paged dispatch runs a two-phase protocol: the total count is taken from an
independently rebuilt descriptor carrying no window, then the fetch applies
the request's skip, limit and sort to the original descriptor. The two
phases are independent reads; no transactional consistency between them is
guaranteed.

Key Features:
  - Type-safe dispatch using Go generics
  - Closed set of execution strategies selected by declared return shape
  - Immutable query descriptors, cheap to re-derive for the count phase
  - Semantic error types for every failure in the dispatch path
  - In-memory mock store for testing

For more information, see the documentation at https://github.com/suparena/querystore
*/
package querystore
