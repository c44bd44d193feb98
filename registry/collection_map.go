/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// CollectionMap is the file form of the type → collection mapping: domain
// type names (as reflect reports them, e.g. "testmodels.Player") to
// collection names.
type CollectionMap map[string]string

// LoadCollectionMap reads a YAML collection map from r.
func LoadCollectionMap(r io.Reader) (CollectionMap, error) {
	var m CollectionMap
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode collection map: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadCollectionMapFile reads a YAML collection map from a file path.
func LoadCollectionMapFile(path string) (CollectionMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection map file: %w", err)
	}
	defer f.Close()
	return LoadCollectionMap(f)
}

// Validate checks that every entry carries both a type name and a
// collection name.
func (m CollectionMap) Validate() error {
	for typeName, collection := range m {
		if typeName == "" {
			return fmt.Errorf("collection map entry with empty type name")
		}
		if collection == "" {
			return fmt.Errorf("collection map entry %q has an empty collection name", typeName)
		}
	}
	return nil
}

// RegisterCollectionFromMap registers the collection for type T by looking
// its type name up in the given map.
func RegisterCollectionFromMap[T any](m CollectionMap) error {
	var zero T
	t := reflect.TypeOf(zero)
	name, ok := m[t.String()]
	if !ok {
		return fmt.Errorf("collection map has no entry for type %s", t.String())
	}
	RegisterCollection[T](name)
	return nil
}
