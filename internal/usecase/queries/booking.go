package queries

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrUnknownState    = errs.New("unknown state")
	// ErrNoBookingsFound surfaces an empty filtered listing as a reportable
	// condition instead of an empty slice. Questionable, but it is the
	// contract callers rely on.
	ErrNoBookingsFound = errs.New("no bookings found")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StatusFilter, now time.Time, page Page) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StatusFilter, now time.Time, page Page) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetForViewer returns a booking only to its booker or the owner of the
	// booked item. Anyone else gets the same answer as for a booking that
	// does not exist, so existence never leaks.
	GetForViewer(ctx context.Context, bookingID, viewerID uuid.UUID) (*BookingView, error)
	// ListForUser dispatches on (asOwner, state): asOwner selects whether
	// userID matches item owners or bookers; state is one of
	// ALL/CURRENT/PAST/FUTURE/WAITING/REJECTED. Results are sorted by start
	// descending and paginated by (from, size).
	ListForUser(ctx context.Context, userID uuid.UUID, state string, asOwner bool, from, size *int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

func (q *bookingQueriesImpl) GetForViewer(ctx context.Context, bookingID, viewerID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if view.BookerID != viewerID && view.OwnerID != viewerID {
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, state string, asOwner bool, from, size *int32) ([]*BookingView, error) {
	filter, err := booking.ParseStatusFilter(state)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownState)
	}

	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()

	var views []*BookingView
	if asOwner {
		views, err = q.store.ListForOwner(ctx, userID, filter, now, page)
	} else {
		views, err = q.store.ListForBooker(ctx, userID, filter, now, page)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	if len(views) == 0 {
		return nil, ErrNoBookingsFound
	}

	return views, nil
}
