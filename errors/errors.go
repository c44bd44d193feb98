/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidArgumentCount is returned when an invocation supplies fewer
	// bound values than the derived predicate chain requires
	ErrInvalidArgumentCount = errors.New("invalid argument count")

	// ErrUnsupportedPredicate is returned when a predicate clause cannot be
	// translated to the store's query language
	ErrUnsupportedPredicate = errors.New("unsupported predicate")

	// ErrUnparseableMethodName is returned when a method name does not match
	// the recognized predicate grammar
	ErrUnparseableMethodName = errors.New("unparseable method name")

	// ErrMissingPageRequest is returned when a page-returning method is
	// invoked without a page request
	ErrMissingPageRequest = errors.New("missing page request")

	// ErrStoreUnavailable is returned when the underlying store cannot be reached
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreTimeout is returned when a store round trip is cancelled or times out
	ErrStoreTimeout = errors.New("store timeout")

	// ErrNoCollection is returned when no collection is registered for a domain type
	ErrNoCollection = errors.New("no collection registered for type")
)

// InvalidArgumentCountError reports a mismatch between the bound values a
// predicate chain requires and the values an invocation supplied
type InvalidArgumentCountError struct {
	Method   string
	Required int
	Supplied int
}

func (e *InvalidArgumentCountError) Error() string {
	return fmt.Sprintf("method %q requires %d bound values, got %d", e.Method, e.Required, e.Supplied)
}

func (e *InvalidArgumentCountError) Is(target error) bool {
	return target == ErrInvalidArgumentCount
}

// UnsupportedPredicateError reports a predicate clause that has no rendering
// in the store's query language
type UnsupportedPredicateError struct {
	Property string
	Operator string
	Reason   string
}

func (e *UnsupportedPredicateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported predicate %s on property %q: %s", e.Operator, e.Property, e.Reason)
	}
	return fmt.Sprintf("unsupported predicate %s on property %q", e.Operator, e.Property)
}

func (e *UnsupportedPredicateError) Is(target error) bool {
	return target == ErrUnsupportedPredicate
}

// UnparseableMethodNameError reports a method name the predicate grammar rejects
type UnparseableMethodNameError struct {
	Method string
	Reason string
}

func (e *UnparseableMethodNameError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot parse method name %q: %s", e.Method, e.Reason)
	}
	return fmt.Sprintf("cannot parse method name %q", e.Method)
}

func (e *UnparseableMethodNameError) Is(target error) bool {
	return target == ErrUnparseableMethodName
}

// MissingPageRequestError reports a page-returning method invoked without a
// page request among its parameters
type MissingPageRequestError struct {
	Method string
}

func (e *MissingPageRequestError) Error() string {
	return fmt.Sprintf("method %q returns a page but no page request was supplied", e.Method)
}

func (e *MissingPageRequestError) Is(target error) bool {
	return target == ErrMissingPageRequest
}

// StoreUnavailableError wraps a failed store round trip
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// StoreTimeoutError wraps a store round trip that was cancelled or timed out
type StoreTimeoutError struct {
	Op  string
	Err error
}

func (e *StoreTimeoutError) Error() string {
	return fmt.Sprintf("store %s timed out: %v", e.Op, e.Err)
}

func (e *StoreTimeoutError) Is(target error) bool {
	return target == ErrStoreTimeout
}

func (e *StoreTimeoutError) Unwrap() error {
	return e.Err
}

// NoCollectionError reports a domain type with no registered collection name
type NoCollectionError struct {
	Type string
}

func (e *NoCollectionError) Error() string {
	return fmt.Sprintf("no collection registered for type %s", e.Type)
}

func (e *NoCollectionError) Is(target error) bool {
	return target == ErrNoCollection
}

// Helper functions for creating errors

// NewInvalidArgumentCountError creates a new InvalidArgumentCountError
func NewInvalidArgumentCountError(method string, required, supplied int) error {
	return &InvalidArgumentCountError{Method: method, Required: required, Supplied: supplied}
}

// NewUnsupportedPredicateError creates a new UnsupportedPredicateError
func NewUnsupportedPredicateError(property, operator, reason string) error {
	return &UnsupportedPredicateError{Property: property, Operator: operator, Reason: reason}
}

// NewUnparseableMethodNameError creates a new UnparseableMethodNameError
func NewUnparseableMethodNameError(method, reason string) error {
	return &UnparseableMethodNameError{Method: method, Reason: reason}
}

// NewMissingPageRequestError creates a new MissingPageRequestError
func NewMissingPageRequestError(method string) error {
	return &MissingPageRequestError{Method: method}
}

// NewStoreUnavailableError creates a new StoreUnavailableError
func NewStoreUnavailableError(op string, err error) error {
	return &StoreUnavailableError{Op: op, Err: err}
}

// NewStoreTimeoutError creates a new StoreTimeoutError
func NewStoreTimeoutError(op string, err error) error {
	return &StoreTimeoutError{Op: op, Err: err}
}

// NewNoCollectionError creates a new NoCollectionError
func NewNoCollectionError(typeName string) error {
	return &NoCollectionError{Type: typeName}
}

// IsInvalidArgumentCount checks if an error is an invalid argument count error
func IsInvalidArgumentCount(err error) bool {
	return errors.Is(err, ErrInvalidArgumentCount)
}

// IsUnsupportedPredicate checks if an error is an unsupported predicate error
func IsUnsupportedPredicate(err error) bool {
	return errors.Is(err, ErrUnsupportedPredicate)
}

// IsUnparseableMethodName checks if an error is an unparseable method name error
func IsUnparseableMethodName(err error) bool {
	return errors.Is(err, ErrUnparseableMethodName)
}

// IsMissingPageRequest checks if an error is a missing page request error
func IsMissingPageRequest(err error) bool {
	return errors.Is(err, ErrMissingPageRequest)
}

// IsStoreUnavailable checks if an error is a store unavailable error
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsStoreTimeout checks if an error is a store timeout error
func IsStoreTimeout(err error) bool {
	return errors.Is(err, ErrStoreTimeout)
}

// IsNoCollection checks if an error is a no collection error
func IsNoCollection(err error) bool {
	return errors.Is(err, ErrNoCollection)
}
