/*
Package querymodels defines the data structures used throughout QueryStore.

Key Types:

QueryMethod:
The declarative description of a derived query method — its name and the
return shape that selects the execution strategy:

	method := querymodels.NewQueryMethod("FindByCountry", querymodels.ShapeCollection)

Descriptor:
The store-native form of one derived query, built by the descriptor factory
from a predicate tree and the invocation's bound values:

	desc.FilterExpression()          // "#p0 = :v0 AND #p1 > :v1"
	desc.ExpressionAttributeNames()  // {"#p0": "Country", "#p1": "Age"}
	desc.ExpressionAttributeValues() // {":v0": ..., ":v1": ...}

Descriptors are immutable values; WithPagination and WithSort return derived
copies so the count and fetch phases of a paged dispatch cannot interfere.

PageRequest / Page:
The bounded-window read protocol. A PageRequest carries a zero-based page
index, a positive page size and an optional sort order; a Page pairs the
fetched window with its request and the total matching count:

	req, _ := querymodels.NewPageRequest(0, 10)
	page.Items      // at most req.Size() entities
	page.TotalCount // matches across all pages

These types provide a consistent contract across different store adapters.
*/
package querymodels
