//go:build unit

package booking_test

import (
	"testing"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/pkg/clock"
	"itemshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func buildDomain(b *builder.BookingBuilder) (*booking.Booking, error) {
	factory := booking.NewFactory(clock.NewMockClock(b.Now))
	return factory.NewBooking(b.ItemSnapshot(), b.BookerID, b.Period())
}

func TestFactoryNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := buildDomain(b)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.True(t, actual.IsWaiting())
	})

	t.Run("availability", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.Available = false },
				errIs:  booking.ErrItemUnavailable,
			},
		})
	})

	t.Run("period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero start",
				mutate: func(b *builder.BookingBuilder) { b.Start = time.Time{} },
				errIs:  booking.ErrInvalidPeriod,
			},
			{
				name:   "zero end",
				mutate: func(b *builder.BookingBuilder) { b.End = time.Time{} },
				errIs:  booking.ErrInvalidPeriod,
			},
			{
				name: "end before now",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-48 * time.Hour)
					b.End = b.Now.Add(-24 * time.Hour)
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "end before start",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(48 * time.Hour)
					b.End = b.Now.Add(24 * time.Hour)
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "end equals start",
				mutate: func(b *builder.BookingBuilder) {
					b.End = b.Start
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "start before now",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-time.Hour)
				},
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name: "start exactly now is rejected",
				mutate: func(b *builder.BookingBuilder) {
					// Now is strictly before start per the contract
					b.Start = b.Now.Add(-time.Nanosecond)
				},
				errIs: booking.ErrInvalidPeriod,
			},
		})
	})

	t.Run("self booking", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "booker owns the item",
				mutate: func(b *builder.BookingBuilder) { b.BookerID = b.OwnerID },
				errIs:  booking.ErrOwnItemBooking,
			},
		})
	})

	t.Run("check order: availability beats period", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Available = false
			b.End = b.Start // also invalid
		})
		_, err := buildDomain(b)
		require.ErrorIs(t, err, booking.ErrItemUnavailable)
	})

	t.Run("check order: period beats self booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookerID = b.OwnerID
			b.End = b.Start
		})
		_, err := buildDomain(b)
		require.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		first, err1 := buildDomain(b)
		second, err2 := buildDomain(b)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := buildDomain(builder.NewBookingBuilder().With(c.mutate))

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
