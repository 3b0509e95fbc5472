package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingUserResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID        uuid.UUID           `json:"id"`
	Start     time.Time           `json:"start"`
	End       time.Time           `json:"end"`
	Status    string              `json:"status"`
	Item      BookingItemResponse `json:"item"`
	Booker    BookingUserResponse `json:"booker"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func FromBookingView(bv *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     bv.ID,
		Start:  bv.Start,
		End:    bv.End,
		Status: bv.Status,
		Item: BookingItemResponse{
			ID:   bv.ItemID,
			Name: bv.ItemName,
		},
		Booker: BookingUserResponse{
			ID:   bv.BookerID,
			Name: bv.BookerName,
		},
		CreatedAt: bv.CreatedAt,
		UpdatedAt: bv.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, bv := range views {
		out = append(out, FromBookingView(bv))
	}
	return out
}
