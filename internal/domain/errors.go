package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")

	// ErrCategoryNotEmpty guards against orphaning items: a category that
	// still owns menu items cannot be deleted.
	ErrCategoryNotEmpty = errors.New("category still has items")

	// ErrCancelWindowClosed means the cancellation grace window elapsed or
	// the order already progressed past the cancellable statuses.
	ErrCancelWindowClosed = errors.New("order can no longer be cancelled")
)

// ValidationError reports a missing or malformed request field. Nothing is
// written when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError is returned for a status change that is not a legal
// edge from the order's current state, including the one lost by a worker
// racing another worker for the same order.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %q to %q", e.From, e.To)
}

func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
