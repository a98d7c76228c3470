package types

import (
	"errors"
	"fmt"
)

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Table operation errors.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidID        = errors.New("invalid entity ID")
	ErrInvalidData      = errors.New("invalid entity data")
	ErrAlreadyCheckedIn = errors.New("already checked in today")
)

// ValidationError reports missing required fields. Message is safe to show
// to API clients. It matches ErrInvalidData.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidData }

// NotFoundError reports that no row of Entity exists with ID.
// It matches ErrNotFound.
type NotFoundError struct {
	Entity string // Display name, e.g. "Member".
	ID     int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Entity) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CheckedInError reports a second check-in for the same person on the same
// calendar day. It matches ErrAlreadyCheckedIn.
type CheckedInError struct {
	Entity string // "Member" or "Patient".
	ID     int64
	Date   string // YYYY-MM-DD
}

func (e *CheckedInError) Error() string {
	return fmt.Sprintf("%s has already checked in today", e.Entity)
}

func (e *CheckedInError) Is(target error) bool { return target == ErrAlreadyCheckedIn }

// required returns a ValidationError with msg unless every check passed.
func required(msg string, present ...bool) error {
	for _, ok := range present {
		if !ok {
			return &ValidationError{Message: msg}
		}
	}
	return nil
}
