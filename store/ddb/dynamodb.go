/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoStore implements store.Store[T] by using AWS DynamoDB as the
// underlying document store. Collection names map to table names; both read
// operations scan with the descriptor's filter expression. DynamoDB has no
// server-side offset, so the skip/limit window and any sort order are
// applied client-side after the scan.
type DynamoStore[T any] struct {
	client *sdk.Client
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	// Create a DynamoDB client
	client := sdk.NewFromConfig(cfg)

	log.Printf("DynamoDB client initialized in region: %s", awsRegion)
	return client, nil
}

// NewDynamoStore constructs a new DynamoStore for type T.
func NewDynamoStore[T any](awsAccessKey, awsSecretKey, awsRegion string) (*DynamoStore[T], error) {
	// Create a new DynamoDB client
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &DynamoStore[T]{client: client}, nil
}

// NewDynamoStoreFromClient constructs a DynamoStore around an existing client.
func NewDynamoStoreFromClient[T any](client *sdk.Client) *DynamoStore[T] {
	return &DynamoStore[T]{client: client}
}
