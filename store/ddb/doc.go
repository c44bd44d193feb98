/*
Package ddb provides the DynamoDB implementation of the Store interface.

A DynamoStore[T] maps collection names to table names and serves both read
operations by scanning with the descriptor's filter expression:

	store, err := ddb.NewDynamoStore[Player](accessKey, secretKey, region)
	items, err := store.Find(ctx, "players", desc)
	total, err := store.Count(ctx, "players", desc)

DynamoDB offers no server-side offset, so the descriptor's skip/limit window
and sort order are applied client-side after the scan completes. Count uses
Select=COUNT and sums the per-page counts, so no items travel over the wire.

Items are decoded through the decode function registered for the collection
when one exists (see the registry package), otherwise unmarshaled directly
into T with the attributevalue converter.

Failed round trips surface as errors.ErrStoreUnavailable; context
cancellation and deadline expiry surface as errors.ErrStoreTimeout.
*/
package ddb
