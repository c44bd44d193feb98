/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DecodeFunc defines a function that takes a raw document and returns the
// decoded entity. Registering one per collection lets callers override the
// default attributevalue conversion for that collection.
type DecodeFunc func(item map[string]types.AttributeValue) (interface{}, error)

var (
	decodeRegistry = make(map[string]DecodeFunc)
	decodeMu       sync.RWMutex
)

// RegisterDecodeFunc registers a decode function for a given collection.
// If a function is already registered for the collection, it panics to
// prevent accidental overrides.
func RegisterDecodeFunc(collection string, fn DecodeFunc) {
	decodeMu.Lock()
	defer decodeMu.Unlock()
	if _, exists := decodeRegistry[collection]; exists {
		panic(fmt.Sprintf("decode registry: collection %q already registered", collection))
	}
	decodeRegistry[collection] = fn
}

// GetDecodeFunc returns the registered decode function for the given
// collection. If no function is registered, it returns an error.
func GetDecodeFunc(collection string) (DecodeFunc, error) {
	decodeMu.RLock()
	defer decodeMu.RUnlock()
	fn, ok := decodeRegistry[collection]
	if !ok {
		return nil, fmt.Errorf("decode registry: no decode function registered for collection %q", collection)
	}
	return fn, nil
}
