package commands

import (
	"context"
	"errors"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/domain/item"
	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item is not available")
	ErrInvalidPeriod   = errs.New("invalid booking dates")
	ErrOwnItemBooking  = errs.New("cannot book own item")
	ErrNotItemOwner    = errs.New("user is not the item owner")
	ErrStatusFinal     = errs.New("status can no longer be changed")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.Snapshot, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*item.Snapshot, error)
}

type BookingViewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	SetStatusFromWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error)
}

type BookingCommands interface {
	// CreateBooking validates and persists a new WAITING booking. Failure
	// order is contractual: booker lookup, item lookup, availability, date
	// sanity, self-booking.
	CreateBooking(ctx context.Context, itemID, bookerID uuid.UUID, start, end time.Time) (*queries.BookingView, error)
	// DecideBooking approves or rejects a waiting booking. Only the owner of
	// the booked item may decide, exactly once.
	DecideBooking(ctx context.Context, bookingID, deciderID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	bookingReads BookingViewReadStore
	itemReads    ItemReadStore
	userReads    UserReadStore
	factory      *booking.Factory
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	bookingReads BookingViewReadStore,
	itemReads ItemReadStore,
	userReads UserReadStore,
	factory *booking.Factory,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		bookingReads: bookingReads,
		itemReads:    itemReads,
		userReads:    userReads,
		factory:      factory,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, itemID, bookerID uuid.UUID, start, end time.Time) (*queries.BookingView, error) {
	booker, err := resolveUser(ctx, c.userReads, bookerID)
	if err != nil {
		return nil, err
	}

	it, err := resolveItem(ctx, c.itemReads, itemID)
	if err != nil {
		return nil, err
	}

	entity, err := c.factory.NewBooking(*it, booker.ID, booking.NewPeriod(start, end))
	if err != nil {
		return nil, markDomainError(err)
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the joined view of what was persisted.
	view, err := c.bookingReads.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) DecideBooking(ctx context.Context, bookingID, deciderID uuid.UUID, approve bool) (*queries.BookingView, error) {
	view, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if view.OwnerID != deciderID {
		return nil, ErrNotItemOwner
	}

	if booking.Status(view.Status) != booking.StatusWaiting {
		return nil, ErrStatusFinal
	}

	target := booking.StatusRejected
	if approve {
		target = booking.StatusApproved
	}

	// The read above is advisory only; the store-level compare-and-set is
	// what makes the transition one-shot under concurrent decisions.
	updated, err := c.bookingRepo.SetStatusFromWaiting(ctx, bookingID, target)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		return nil, ErrStatusFinal
	}

	refreshed, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return refreshed, nil
}

func resolveUser(ctx context.Context, reads UserReadStore, id uuid.UUID) (*user.Snapshot, error) {
	u, err := reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u, nil
}

func resolveItem(ctx context.Context, reads ItemReadStore, id uuid.UUID) (*item.Snapshot, error) {
	it, err := reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return it, nil
}

func markDomainError(err error) error {
	switch {
	case errors.Is(err, booking.ErrItemUnavailable):
		return errs.Mark(err, ErrItemUnavailable)
	case errors.Is(err, booking.ErrInvalidPeriod):
		return errs.Mark(err, ErrInvalidPeriod)
	case errors.Is(err, booking.ErrOwnItemBooking):
		return errs.Mark(err, ErrOwnItemBooking)
	default:
		return err
	}
}
