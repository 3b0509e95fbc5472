package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "itemshare/internal/handler/dto/request"
	resdto "itemshare/internal/handler/dto/response"
	"itemshare/internal/handler/httperr"
	"itemshare/internal/handler/middleware"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user in context"), "Internal server error", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateBooking(c.Request.Context(), req.ItemID, userID, req.Start, req.End)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// Decide approves or rejects a pending booking. The approved query
// parameter is mandatory and must parse as a bool.
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user in context"), "Internal server error", nil)
		return
	}
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter", nil)
		return
	}
	view, err := h.cmds.DecideBooking(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user in context"), "Internal server error", nil)
		return
	}
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	view, err := h.q.GetForViewer(c.Request.Context(), bookingID, userID)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, false)
}

func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, true)
}

func (h *BookingHandler) list(c *gin.Context, asOwner bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user in context"), "Internal server error", nil)
		return
	}
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, err := h.q.ListForUser(c.Request.Context(), userID, query.State, asOwner, query.From, query.Size)
	if err != nil {
		if errors.Is(err, queries.ErrUnknownState) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+query.State, nil)
			return
		}
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrOwnItemBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cannot book own item", nil)
	case errors.Is(err, commands.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Only the item owner can decide a booking", nil)
	case errors.Is(err, queries.ErrNoBookingsFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No bookings found", nil)
	case errors.Is(err, commands.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking", nil)
	case errors.Is(err, commands.ErrInvalidPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking dates", nil)
	case errors.Is(err, commands.ErrStatusFinal):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking status can no longer be changed", nil)
	case errors.Is(err, queries.ErrInvalidPage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
