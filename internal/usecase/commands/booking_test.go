//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"itemshare/internal/domain/booking"
	"itemshare/internal/domain/item"
	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"
	"itemshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

type fakeUserReadStore struct {
	snapshot *user.Snapshot
	err      error
}

func (f *fakeUserReadStore) FindByID(_ context.Context, _ uuid.UUID) (*user.Snapshot, error) {
	return f.snapshot, f.err
}

type fakeItemReadStore struct {
	snapshot *item.Snapshot
	err      error
}

func (f *fakeItemReadStore) FindByID(_ context.Context, _ uuid.UUID) (*item.Snapshot, error) {
	return f.snapshot, f.err
}

type fakeBookingViewReadStore struct {
	views []*queries.BookingView
	errs  []error
	calls int
}

func (f *fakeBookingViewReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	i := f.calls
	f.calls++
	var v *queries.BookingView
	var err error
	if i < len(f.views) {
		v = f.views[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return v, err
}

type fakeBookingRepository struct {
	created    *booking.Booking
	createErr  error
	casUpdated bool
	casErr     error
	casStatus  booking.Status
	casCalled  bool
}

func (f *fakeBookingRepository) Create(_ context.Context, b *booking.Booking) error {
	f.created = b
	return f.createErr
}

func (f *fakeBookingRepository) SetStatusFromWaiting(_ context.Context, _ uuid.UUID, status booking.Status) (bool, error) {
	f.casCalled = true
	f.casStatus = status
	return f.casUpdated, f.casErr
}

type bookingFixture struct {
	b     *builder.BookingBuilder
	users *fakeUserReadStore
	items *fakeItemReadStore
	reads *fakeBookingViewReadStore
	repo  *fakeBookingRepository
	cmds  commands.BookingCommands
}

func newBookingFixture(mutate ...func(*bookingFixture)) *bookingFixture {
	b := builder.NewBookingBuilder()
	it := b.ItemSnapshot()
	f := &bookingFixture{
		b:     b,
		users: &fakeUserReadStore{snapshot: &user.Snapshot{ID: b.BookerID, Name: b.BookerName}},
		items: &fakeItemReadStore{snapshot: &it},
		reads: &fakeBookingViewReadStore{views: []*queries.BookingView{b.BuildView()}},
		repo:  &fakeBookingRepository{casUpdated: true},
	}
	for _, m := range mutate {
		m(f)
	}
	f.cmds = commands.NewBookingCommands(f.repo, f.reads, f.items, f.users, booking.NewFactory(clock.NewMockClock(b.Now)))
	return f
}

func TestCreateBooking(t *testing.T) {
	t.Run("success persists a waiting booking and returns the view", func(t *testing.T) {
		f := newBookingFixture()

		view, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.NoError(t, err)
		require.NotNil(t, view)

		require.NotNil(t, f.repo.created)
		assert.Equal(t, booking.StatusWaiting, f.repo.created.Status())
		assert.Equal(t, f.b.ItemID, f.repo.created.ItemID())
		assert.Equal(t, f.b.BookerID, f.repo.created.BookerID())
	})

	t.Run("unknown booker", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.users.snapshot, f.users.err = nil, errNotFound
		})
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
		assert.Nil(t, f.repo.created)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.items.snapshot, f.items.err = nil, errNotFound
		})
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("booker check precedes item check", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.users.snapshot, f.users.err = nil, errNotFound
			f.items.snapshot, f.items.err = nil, errNotFound
		})
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.items.snapshot.Available = false
		})
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("invalid dates", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.End, f.b.Start)
		require.ErrorIs(t, err, commands.ErrInvalidPeriod)
	})

	t.Run("own item", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.items.snapshot.OwnerID = f.b.BookerID
			f.users.snapshot.ID = f.b.BookerID
		})
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.ErrorIs(t, err, commands.ErrOwnItemBooking)
	})

	t.Run("persistence failure", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.repo.createErr = infra.WrapRepoErr("insert failed", errors.New("boom"))
		})
		_, err := f.cmds.CreateBooking(context.Background(), f.b.ItemID, f.b.BookerID, f.b.Start, f.b.End)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestDecideBooking(t *testing.T) {
	deciderIsOwner := func(f *bookingFixture) {}

	t.Run("owner approves a waiting booking", func(t *testing.T) {
		f := newBookingFixture(deciderIsOwner)
		approved := f.b.With(func(b *builder.BookingBuilder) { b.Status = booking.StatusApproved }).BuildView()
		f.reads.views = append(f.reads.views, approved)

		view, err := f.cmds.DecideBooking(context.Background(), approved.ID, f.b.OwnerID, true)
		require.NoError(t, err)
		assert.Equal(t, string(booking.StatusApproved), view.Status)
		assert.Equal(t, booking.StatusApproved, f.repo.casStatus)
	})

	t.Run("owner rejects a waiting booking", func(t *testing.T) {
		f := newBookingFixture(deciderIsOwner)
		rejected := f.b.With(func(b *builder.BookingBuilder) { b.Status = booking.StatusRejected }).BuildView()
		f.reads.views = append(f.reads.views, rejected)

		view, err := f.cmds.DecideBooking(context.Background(), rejected.ID, f.b.OwnerID, false)
		require.NoError(t, err)
		assert.Equal(t, string(booking.StatusRejected), view.Status)
		assert.Equal(t, booking.StatusRejected, f.repo.casStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.reads.views = nil
			f.reads.errs = []error{errNotFound}
		})
		_, err := f.cmds.DecideBooking(context.Background(), uuid.New(), f.b.OwnerID, true)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("booker cannot decide", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.cmds.DecideBooking(context.Background(), uuid.New(), f.b.BookerID, true)
		require.ErrorIs(t, err, commands.ErrNotItemOwner)
		assert.False(t, f.repo.casCalled)
	})

	t.Run("stranger cannot decide", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.cmds.DecideBooking(context.Background(), uuid.New(), uuid.New(), true)
		require.ErrorIs(t, err, commands.ErrNotItemOwner)
	})

	t.Run("already decided", func(t *testing.T) {
		f := newBookingFixture(func(f *bookingFixture) {
			f.b.Status = booking.StatusApproved
			f.reads.views = []*queries.BookingView{f.b.BuildView()}
		})
		_, err := f.cmds.DecideBooking(context.Background(), uuid.New(), f.b.OwnerID, true)
		require.ErrorIs(t, err, commands.ErrStatusFinal)
		assert.False(t, f.repo.casCalled)
	})

	t.Run("lost compare-and-set race", func(t *testing.T) {
		// The advisory read sees WAITING but a concurrent decision wins the
		// store-level update.
		f := newBookingFixture(func(f *bookingFixture) {
			f.repo.casUpdated = false
		})
		_, err := f.cmds.DecideBooking(context.Background(), uuid.New(), f.b.OwnerID, true)
		require.ErrorIs(t, err, commands.ErrStatusFinal)
		assert.True(t, f.repo.casCalled)
	})
}
