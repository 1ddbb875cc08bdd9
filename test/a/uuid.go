package a

import "github.com/google/uuid"

// UUID returns a new time-ordered UUID, the same kind the store hands out.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
