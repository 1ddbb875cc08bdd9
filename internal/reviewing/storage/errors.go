package storage

import (
	"errors"
	"fmt"
)

// ErrNoKey indicates that the passed in key is blank.
var ErrNoKey = errors.New("can't store value because the key is not set")

// UnknownDriverError is returned by Open for a driver it doesn't know how to open.
type UnknownDriverError struct {
	Driver string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown storage driver: %q", e.Driver)
}
