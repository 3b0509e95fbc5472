package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type ListBookingsQuery struct {
	State string `form:"state,default=ALL"`
	From  *int32 `form:"from"`
	Size  *int32 `form:"size"`
}
