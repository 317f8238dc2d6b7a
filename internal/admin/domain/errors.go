package domain

import "errors"

var (
	// ErrRecordNotFound is returned when an operation targets an id that is
	// no longer in the store, e.g. a stale edit form
	ErrRecordNotFound = errors.New("job record not found")
)

// PersistenceError wraps a failed storage write. After one of these the
// in-memory listing is not authoritative; callers re-list to confirm state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failed during " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a PersistenceError for the given operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
