package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services; controllers translate these into
// HTTP status codes.
var (
	// ErrNotFound means the referenced entity id (or number/code) is absent.
	ErrNotFound = errors.New("record not found")
	// ErrStaleWrite is an optimistic-concurrency conflict: the record changed
	// between read and write, so the caller must reload and retry.
	ErrStaleWrite = errors.New("record was modified concurrently")
	// ErrRestricted rejects deleting a service or master that completed work
	// still references.
	ErrRestricted = errors.New("record is referenced by completed work")
	// ErrDuplicateNumber rejects reusing an existing order number.
	ErrDuplicateNumber = errors.New("order number already in use")
	// ErrPhotoStorage wraps a failed photo write. The failed create/update is
	// aborted before any entity state is persisted.
	ErrPhotoStorage = errors.New("photo storage failure")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a single violated field constraint. Validation runs
// before any persistence mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
