package reviewing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrPrecondition is matched by every PreconditionError.
	ErrPrecondition = errors.New("precondition violated")

	// ErrNotLoaded is returned by any operation called before Load.
	ErrNotLoaded = errors.New("review store has not been loaded")

	// ErrAlreadyLoaded is returned when Load is called a second time.
	ErrAlreadyLoaded = errors.New("review store has already been loaded")

	// ErrDraftChanged is returned by SubmitDraft when the draft changed, or was
	// already submitted, while the submit was underway.
	ErrDraftChanged = errors.New("draft changed while being submitted")

	// ErrClosed is returned by mutations after Close.
	ErrClosed = errors.New("review store is closed")
)

// NotFoundError is returned when no review has the ID, usually because it was deleted.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("review not found by id: %s", e.ID)
}

// PreconditionError is a refused submit, nothing was changed.
type PreconditionError struct {
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPrecondition, e.Err)
}

func (e *PreconditionError) Unwrap() []error {
	return []error{ErrPrecondition, e.Err}
}

// DeserializationError is returned by Load when the stored reviews couldn't be read back.
// The store is still usable, it starts over with an empty list.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to decode reviews stored under %q: %s", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// PersistenceWriteError is reported when a snapshot couldn't be written after all retries.
// The in-memory list is kept, the next mutation writes a newer snapshot.
type PersistenceWriteError struct {
	Key     string
	Version uint64
	Err     error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("failed to write snapshot %d of reviews under %q: %s", e.Version, e.Key, e.Err)
}

func (e *PersistenceWriteError) Unwrap() error {
	return e.Err
}
