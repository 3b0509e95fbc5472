package readstore

import (
	"context"
	"fmt"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
SELECT b.id, b.item_id, i.name AS item_name, i.owner_id, b.booker_id, u.name AS booker_name,
       b.start_time, b.end_time, b.status, b.created_at, b.updated_at
  FROM bookings b
  JOIN items i ON i.id = b.item_id
  JOIN users u ON u.id = b.booker_id`

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSelect+" WHERE b.id = $1", pgconv.UUIDToPgtype(id))

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

// ListForBooker returns the booker-side page of the status dispatch table,
// sorted by start descending. The caller supplies "now" so temporal buckets
// are classified against the injected clock, not the database clock.
func (r *BookingReadStore) ListForBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StatusFilter, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	return r.list(ctx, "b.booker_id = $1", bookerID, filter, now, page)
}

// ListForOwner is the owner-side counterpart: userID matches the owner of the
// booked item instead of the booker.
func (r *BookingReadStore) ListForOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StatusFilter, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	return r.list(ctx, "i.owner_id = $1", ownerID, filter, now, page)
}

func (r *BookingReadStore) list(ctx context.Context, roleCond string, userID uuid.UUID, filter booking.StatusFilter, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	args := []any{pgconv.UUIDToPgtype(userID)}

	var filterCond string
	switch filter {
	case booking.FilterAll:
		filterCond = ""
	case booking.FilterPast:
		args = append(args, pgconv.TimeToPgtype(now))
		filterCond = fmt.Sprintf(" AND b.end_time < $%d", len(args))
	case booking.FilterFuture:
		args = append(args, pgconv.TimeToPgtype(now))
		filterCond = fmt.Sprintf(" AND b.start_time > $%d", len(args))
	case booking.FilterCurrent:
		args = append(args, pgconv.TimeToPgtype(now))
		filterCond = fmt.Sprintf(" AND b.start_time <= $%d AND b.end_time >= $%d", len(args), len(args))
	case booking.FilterWaiting, booking.FilterRejected:
		args = append(args, filter.String())
		filterCond = fmt.Sprintf(" AND b.status = $%d", len(args))
	default:
		return nil, infra.WrapRepoErr("unsupported status filter: "+filter.String(), nil)
	}

	args = append(args, page.Limit(), page.Offset())
	sql := fmt.Sprintf("%s WHERE %s%s ORDER BY b.start_time DESC LIMIT $%d OFFSET $%d",
		bookingViewSelect, roleCond, filterCond, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

// CountCompletedForItem counts the user's finished, non-rejected bookings of
// an item; the comment eligibility rule hangs off this.
func (r *BookingReadStore) CountCompletedForItem(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (int64, error) {
	return r.countForItem(ctx,
		"SELECT count(*) FROM bookings b WHERE b.booker_id = $1 AND b.item_id = $2 AND b.end_time < $3 AND b.status <> 'REJECTED'",
		bookerID, itemID, now)
}

// CountUpcomingForItem counts the user's not-yet-started, non-rejected
// bookings of an item.
func (r *BookingReadStore) CountUpcomingForItem(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (int64, error) {
	return r.countForItem(ctx,
		"SELECT count(*) FROM bookings b WHERE b.booker_id = $1 AND b.item_id = $2 AND b.start_time > $3 AND b.status <> 'REJECTED'",
		bookerID, itemID, now)
}

func (r *BookingReadStore) countForItem(ctx context.Context, sql string, bookerID, itemID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(bookerID), pgconv.UUIDToPgtype(itemID), pgconv.TimeToPgtype(now)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings for item", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id, itemID, ownerID, bookerID pgtype.UUID
		itemName, bookerName, status  string
		start, end, created, updated  pgtype.Timestamptz
	)
	err := row.Scan(&id, &itemID, &itemName, &ownerID, &bookerID, &bookerName, &start, &end, &status, &created, &updated)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:         pgconv.UUIDFromPgtype(id),
		ItemID:     pgconv.UUIDFromPgtype(itemID),
		ItemName:   itemName,
		OwnerID:    pgconv.UUIDFromPgtype(ownerID),
		BookerID:   pgconv.UUIDFromPgtype(bookerID),
		BookerName: bookerName,
		Start:      pgconv.TimeFromPgtype(start),
		End:        pgconv.TimeFromPgtype(end),
		Status:     status,
		CreatedAt:  pgconv.TimeFromPgtype(created),
		UpdatedAt:  pgconv.TimeFromPgtype(updated),
	}, nil
}
