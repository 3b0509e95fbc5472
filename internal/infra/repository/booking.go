package repository

import (
	"context"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, item_id, booker_id, start_time, end_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.BookerID()),
		pgconv.TimeToPgtype(b.Period().Start()),
		pgconv.TimeToPgtype(b.Period().End()),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// SetStatusFromWaiting is the compare-and-set behind the one-shot decision
// rule: the status predicate runs inside the UPDATE, so of any number of
// concurrent approve/reject attempts at most one reports success. Returns
// false when the booking was no longer WAITING (or never existed).
func (r *BookingRepository) SetStatusFromWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1 AND status = 'WAITING'`,
		pgconv.UUIDToPgtype(id),
		status.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}
