package reviewing

import "context"

// DefaultKey is where the review list is stored unless the store is told otherwise.
const DefaultKey = "reviews"

// Storage is the durable key/value backend the store writes its snapshots to.
type Storage interface {
	// Get returns the last value written for key, ok is false when nothing has been written yet.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set replaces the value stored for key.
	Set(ctx context.Context, key string, value []byte) error
}
