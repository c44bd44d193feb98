/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	qserrors "github.com/suparena/querystore/errors"
	"github.com/suparena/querystore/predicate"
	"github.com/suparena/querystore/querymodels"
	"github.com/suparena/querystore/registry"
)

// Find scans the collection with the descriptor's filter expression and
// returns the matching documents, sorted and windowed per the descriptor.
// Each item is decoded through the registered decode function for the
// collection when one exists, otherwise unmarshaled directly into T.
func (d *DynamoStore[T]) Find(ctx context.Context, collection string, desc querymodels.Descriptor) ([]T, error) {
	raw, err := d.scanMatching(ctx, collection, desc)
	if err != nil {
		return nil, mapStoreError("find", err)
	}

	sortItems(raw, desc.Sort())
	raw = applyWindow(raw, desc.Skip(), desc.Limit())

	out := make([]T, 0, len(raw))
	decode, decodeErr := registry.GetDecodeFunc(collection)
	for _, item := range raw {
		if decodeErr == nil {
			entity, err := decodeItem[T](decode, item)
			if err != nil {
				return nil, err
			}
			out = append(out, entity)
			continue
		}

		var entity T
		if err := attributevalue.UnmarshalMap(item, &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		out = append(out, entity)
	}
	return out, nil
}

// Count scans the collection with Select=COUNT and sums the per-page counts.
func (d *DynamoStore[T]) Count(ctx context.Context, collection string, desc querymodels.Descriptor) (int64, error) {
	input := &sdk.ScanInput{
		TableName: aws.String(collection),
		Select:    types.SelectCount,
	}
	applyFilter(input, desc)

	var total int64
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			return 0, mapStoreError("count", err)
		}
		total += int64(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return total, nil
}

// scanMatching pages through the scan until the store reports no further
// items, collecting the raw attribute maps.
func (d *DynamoStore[T]) scanMatching(ctx context.Context, collection string, desc querymodels.Descriptor) ([]map[string]types.AttributeValue, error) {
	input := &sdk.ScanInput{
		TableName: aws.String(collection),
	}
	applyFilter(input, desc)

	var items []map[string]types.AttributeValue
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

func applyFilter(input *sdk.ScanInput, desc querymodels.Descriptor) {
	if expr := desc.FilterExpression(); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = desc.ExpressionAttributeNames()
		input.ExpressionAttributeValues = desc.ExpressionAttributeValues()
	}
}

// decodeItem runs a registered decode function and coerces its result to T.
func decodeItem[T any](decode registry.DecodeFunc, item map[string]types.AttributeValue) (T, error) {
	var zero T
	obj, err := decode(item)
	if err != nil {
		return zero, fmt.Errorf("failed to decode item: %w", err)
	}
	if entity, ok := obj.(T); ok {
		return entity, nil
	}
	if ptr, ok := obj.(*T); ok {
		return *ptr, nil
	}
	return zero, fmt.Errorf("decode function returned %T, want %T", obj, zero)
}

// applyWindow cuts the skip/limit window out of the sorted match set. A skip
// beyond the end yields an empty window.
func applyWindow(items []map[string]types.AttributeValue, skip, limit *int32) []map[string]types.AttributeValue {
	if skip != nil {
		if int(*skip) >= len(items) {
			items = items[:0]
		} else {
			items = items[*skip:]
		}
	}
	if limit != nil && int(*limit) < len(items) {
		items = items[:*limit]
	}
	return items
}

// sortItems orders the raw items by the given sort keys. Items missing a
// sort attribute order before items carrying it.
func sortItems(items []map[string]types.AttributeValue, keys []predicate.Sort) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, key := range keys {
			c := compareAttributes(items[i][key.Property], items[j][key.Property])
			if c == 0 {
				continue
			}
			if key.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareAttributes compares two attribute values of the same member type.
// Mixed or unsupported types compare equal, which keeps the sort stable.
func compareAttributes(a, b types.AttributeValue) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		if bv, ok := b.(*types.AttributeValueMemberS); ok {
			return strings.Compare(av.Value, bv.Value)
		}
	case *types.AttributeValueMemberN:
		if bv, ok := b.(*types.AttributeValueMemberN); ok {
			af, aerr := strconv.ParseFloat(av.Value, 64)
			bf, berr := strconv.ParseFloat(bv.Value, 64)
			if aerr == nil && berr == nil {
				switch {
				case af < bf:
					return -1
				case af > bf:
					return 1
				default:
					return 0
				}
			}
		}
	case *types.AttributeValueMemberBOOL:
		if bv, ok := b.(*types.AttributeValueMemberBOOL); ok {
			switch {
			case !av.Value && bv.Value:
				return -1
			case av.Value && !bv.Value:
				return 1
			default:
				return 0
			}
		}
	}
	return 0
}

// mapStoreError classifies a failed round trip into the store error taxonomy.
func mapStoreError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return qserrors.NewStoreTimeoutError(op, err)
	}
	return qserrors.NewStoreUnavailableError(op, err)
}
