package booking

import (
	"time"

	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod   = errs.New("invalid booking period")
	ErrItemUnavailable = errs.New("item is not available")
	ErrOwnItemBooking  = errs.New("cannot book own item")
	ErrInvalidStatus   = errs.New("invalid booking status")
	ErrStatusFinal     = errs.New("status can no longer be changed")
)

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Decide resolves a waiting booking. The transition is one-shot: once the
// booking left WAITING no further decision is accepted, including a repeat of
// the same one. Persistence must re-check this with a compare-and-set; the
// in-memory check alone is not a concurrency guard.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrStatusFinal
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsWaiting() bool {
	return b.status == StatusWaiting
}

func (b *Booking) BucketAt(t time.Time) Bucket {
	return b.period.BucketAt(t)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
