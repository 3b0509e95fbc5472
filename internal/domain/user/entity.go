package user

import "github.com/google/uuid"

// Snapshot is the read-only view of a user the booking core consumes.
// Account management is out of scope; the caller's id arrives pre-resolved.
type Snapshot struct {
	ID   uuid.UUID
	Name string
}
