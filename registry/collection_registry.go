/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// CollectionRegistry maps Go domain types to the collection (table) that
// stores their documents.

var (
	collectionRegistry = make(map[reflect.Type]string)
	mu                 sync.RWMutex
)

// RegisterCollection associates the domain type T with a collection name.
func RegisterCollection[T any](name string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	collectionRegistry[t] = name
}

// CollectionName retrieves the collection name for type T, if any.
func CollectionName[T any]() (string, bool) {
	var zero T
	return CollectionFor(reflect.TypeOf(zero))
}

// CollectionFor retrieves the collection name for a domain type, if any.
func CollectionFor(t reflect.Type) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	name, ok := collectionRegistry[t]
	return name, ok
}
