package api

import (
	"errors"
	"net/http"

	reqdto "itemshare/internal/handler/dto/request"
	resdto "itemshare/internal/handler/dto/response"
	"itemshare/internal/handler/httperr"
	"itemshare/internal/handler/middleware"
	"itemshare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	cmds commands.CommentCommands
}

func NewCommentHandler(cmds commands.CommentCommands) *CommentHandler {
	return &CommentHandler{cmds: cmds}
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user in context"), "Internal server error", nil)
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddComment(c.Request.Context(), itemID, userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, commands.ErrEmptyComment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Comment text cannot be empty", nil)
		case errors.Is(err, commands.ErrFutureBookingOnly):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking of this item has not started yet", nil)
		case errors.Is(err, commands.ErrNeverBooked):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "User has never booked this item", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
