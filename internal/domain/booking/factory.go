package booking

import (
	"itemshare/internal/domain/item"
	"itemshare/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// NewBooking validates a creation request and produces a WAITING booking.
// Check order is part of the contract: availability, then date sanity, then
// the self-booking rule. Existence of the item and booker is the caller's
// responsibility (they arrive as resolved snapshots).
func (f *Factory) NewBooking(it item.Snapshot, bookerID uuid.UUID, period Period) (*Booking, error) {
	if !it.Available {
		return nil, ErrItemUnavailable
	}

	if err := period.ValidateAt(f.clock.Now()); err != nil {
		return nil, err
	}

	if bookerID == it.OwnerID {
		return nil, ErrOwnItemBooking
	}

	return &Booking{
		id:       uuid.New(),
		itemID:   it.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}
