package item

import "github.com/google/uuid"

// Snapshot is the read-only view of an item the booking core consumes. Item
// catalog management lives outside this service; bookings only need identity,
// ownership and availability.
type Snapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Available bool
}
