//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/usecase/queries"
	"itemshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	findByIDView *queries.BookingView
	findByIDErr  error

	listViews []*queries.BookingView
	listErr   error

	gotOwnerCall  bool
	gotBookerCall bool
	gotUserID     uuid.UUID
	gotFilter     booking.StatusFilter
	gotNow        time.Time
	gotPage       queries.Page
}

func (f *fakeBookingReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return f.findByIDView, f.findByIDErr
}

func (f *fakeBookingReadStore) ListForBooker(_ context.Context, bookerID uuid.UUID, filter booking.StatusFilter, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	f.gotBookerCall = true
	f.gotUserID = bookerID
	f.gotFilter = filter
	f.gotNow = now
	f.gotPage = page
	return f.listViews, f.listErr
}

func (f *fakeBookingReadStore) ListForOwner(_ context.Context, ownerID uuid.UUID, filter booking.StatusFilter, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	f.gotOwnerCall = true
	f.gotUserID = ownerID
	f.gotFilter = filter
	f.gotNow = now
	f.gotPage = page
	return f.listViews, f.listErr
}

func TestGetForViewer(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	view := builder.NewBookingBuilder().BuildView()

	newQueries := func(store queries.BookingReadStore) queries.BookingQueries {
		return queries.NewBookingQueries(store, clock.NewMockClock(now))
	}

	t.Run("booker sees the booking", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{findByIDView: view})
		got, err := q.GetForViewer(context.Background(), view.ID, view.BookerID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("item owner sees the booking", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{findByIDView: view})
		got, err := q.GetForViewer(context.Background(), view.ID, view.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{findByIDView: view})
		_, err := q.GetForViewer(context.Background(), view.ID, uuid.New())
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("missing booking gets not found", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{
			findByIDErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
		})
		_, err := q.GetForViewer(context.Background(), uuid.New(), view.BookerID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{
			findByIDErr: infra.WrapRepoErr("query failed", errors.New("boom")),
		})
		_, err := q.GetForViewer(context.Background(), uuid.New(), view.BookerID)
		require.Error(t, err)
		require.NotErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestListForUser(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	view := builder.NewBookingBuilder().BuildView()

	newQueries := func(store queries.BookingReadStore) queries.BookingQueries {
		return queries.NewBookingQueries(store, clock.NewMockClock(now))
	}

	t.Run("dispatches to the booker listing", func(t *testing.T) {
		store := &fakeBookingReadStore{listViews: []*queries.BookingView{view}}
		q := newQueries(store)

		got, err := q.ListForUser(context.Background(), userID, "ALL", false, nil, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.True(t, store.gotBookerCall)
		assert.False(t, store.gotOwnerCall)
		assert.Equal(t, userID, store.gotUserID)
		assert.Equal(t, booking.FilterAll, store.gotFilter)
	})

	t.Run("dispatches to the owner listing", func(t *testing.T) {
		store := &fakeBookingReadStore{listViews: []*queries.BookingView{view}}
		q := newQueries(store)

		_, err := q.ListForUser(context.Background(), userID, "WAITING", true, nil, nil)
		require.NoError(t, err)

		assert.True(t, store.gotOwnerCall)
		assert.False(t, store.gotBookerCall)
		assert.Equal(t, booking.FilterWaiting, store.gotFilter)
	})

	t.Run("snapshots the clock for temporal filters", func(t *testing.T) {
		store := &fakeBookingReadStore{listViews: []*queries.BookingView{view}}
		q := newQueries(store)

		_, err := q.ListForUser(context.Background(), userID, "PAST", false, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, now, store.gotNow)
	})

	t.Run("passes pagination through", func(t *testing.T) {
		store := &fakeBookingReadStore{listViews: []*queries.BookingView{view}}
		q := newQueries(store)

		_, err := q.ListForUser(context.Background(), userID, "ALL", false, i32(20), i32(10))
		require.NoError(t, err)
		assert.Equal(t, int32(10), store.gotPage.Limit())
		assert.Equal(t, int32(20), store.gotPage.Offset())
	})

	t.Run("unknown state", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{})
		_, err := q.ListForUser(context.Background(), userID, "SOMETIME", false, nil, nil)
		require.ErrorIs(t, err, queries.ErrUnknownState)
		assert.Contains(t, err.Error(), "SOMETIME")
	})

	t.Run("invalid pagination", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{})
		_, err := q.ListForUser(context.Background(), userID, "ALL", false, i32(-1), i32(10))
		require.ErrorIs(t, err, queries.ErrInvalidPage)
	})

	t.Run("state is checked before pagination", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{})
		_, err := q.ListForUser(context.Background(), userID, "SOMETIME", false, i32(-1), i32(0))
		require.ErrorIs(t, err, queries.ErrUnknownState)
	})

	t.Run("empty result is an error", func(t *testing.T) {
		q := newQueries(&fakeBookingReadStore{listViews: nil})
		_, err := q.ListForUser(context.Background(), userID, "ALL", false, nil, nil)
		require.ErrorIs(t, err, queries.ErrNoBookingsFound)
	})
}
