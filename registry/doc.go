/*
Package registry maintains the mappings QueryStore resolves at dispatch time.

Collection registry:
Associates Go domain types with the collection (table) storing their
documents. Registration normally happens in an init function alongside the
domain type:

	registry.RegisterCollection[Player]("players")

or from a YAML collection map file:

	m, _ := registry.LoadCollectionMapFile("collections.yaml")
	registry.RegisterCollectionFromMap[Player](m)

Decode registry:
Optionally overrides the default attributevalue conversion for one
collection. The DynamoDB store adapter consults it per item:

	registry.RegisterDecodeFunc("players", func(item map[string]types.AttributeValue) (interface{}, error) {
	    p := &Player{}
	    // custom decoding
	    return p, nil
	})

Both registries are safe for concurrent use.
*/
package registry
