//go:build unit || e2e

package builder

import (
	"time"

	dombooking "itemshare/internal/domain/booking"
	"itemshare/internal/domain/item"
	reqdto "itemshare/internal/handler/dto/request"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Available  bool
	Start      time.Time
	End        time.Time
	Status     dombooking.Status
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Test Booker",
		Available:  true,
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
		Now:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ItemSnapshot() item.Snapshot {
	return item.Snapshot{
		ID:        b.ItemID,
		OwnerID:   b.OwnerID,
		Name:      b.ItemName,
		Available: b.Available,
	}
}

func (b *BookingBuilder) Period() dombooking.Period {
	return dombooking.NewPeriod(b.Start, b.End)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.New(),
		ItemID:     b.ItemID,
		ItemName:   b.ItemName,
		OwnerID:    b.OwnerID,
		BookerID:   b.BookerID,
		BookerName: b.BookerName,
		Start:      b.Start,
		End:        b.End,
		Status:     string(b.Status),
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}
