// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist,
	// or exists but is not visible to the caller. The two cases are
	// deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates no verified identity is attached to the call.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates the caller lacks the required permission grant.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrHasItems indicates a quote cannot be deleted while items exist under it.
	ErrHasItems = errors.New("quote has items")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// UnauthenticatedError provides context for unauthenticated errors.
type UnauthenticatedError struct {
	Reason string
}

// Error implements the error interface.
func (e *UnauthenticatedError) Error() string {
	if e.Reason != "" {
		return "not authenticated: " + e.Reason
	}

	return "not authenticated"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// NewUnauthenticatedError creates an unauthenticated error with context.
func NewUnauthenticatedError(reason string) error {
	return &UnauthenticatedError{Reason: reason}
}

// ForbiddenError provides context for forbidden errors.
type ForbiddenError struct {
	Permission string
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	if e.Permission != "" {
		return fmt.Sprintf("permission %q required", e.Permission)
	}

	return "insufficient permissions"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error naming the missing permission.
func NewForbiddenError(permission string) error {
	return &ForbiddenError{Permission: permission}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// HasItemsError is returned when deleting a quote that still owns items.
// Deletion is blocked, never cascaded.
type HasItemsError struct {
	QuoteID int64
	Count   int
}

// Error implements the error interface.
func (e *HasItemsError) Error() string {
	return fmt.Sprintf("quote %d still has %d item(s)", e.QuoteID, e.Count)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *HasItemsError) Unwrap() error {
	return ErrHasItems
}

// NewHasItemsError creates a has-items error for the given quote.
func NewHasItemsError(quoteID int64, count int) error {
	return &HasItemsError{QuoteID: quoteID, Count: count}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthenticated checks if an error is an unauthenticated error.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsHasItems checks if an error is a has-items error.
func IsHasItems(err error) bool {
	return errors.Is(err, ErrHasItems)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
