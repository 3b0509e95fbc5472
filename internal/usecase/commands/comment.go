package commands

import (
	"context"
	"strings"
	"time"

	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmptyComment = errs.New("comment text cannot be empty")
	// ErrNeverBooked: the user has no completed booking of the item.
	ErrNeverBooked = errs.New("user has never booked this item")
	// ErrFutureBookingOnly: a booking exists but has not started yet. More
	// specific than ErrNeverBooked.
	ErrFutureBookingOnly = errs.New("user booked this item only in the future")
)

type BookingHistoryReadStore interface {
	CountCompletedForItem(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (int64, error)
	CountUpcomingForItem(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (uuid.UUID, time.Time, error)
}

type CommentCommands interface {
	// AddComment persists a comment on an item, permitted only to users who
	// completed a past, non-rejected booking of that item.
	AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	commentRepo CommentRepository
	history     BookingHistoryReadStore
	itemReads   ItemReadStore
	userReads   UserReadStore
	clock       clock.Clock
}

func NewCommentCommands(
	commentRepo CommentRepository,
	history BookingHistoryReadStore,
	itemReads ItemReadStore,
	userReads UserReadStore,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		commentRepo: commentRepo,
		history:     history,
		itemReads:   itemReads,
		userReads:   userReads,
		clock:       clk,
	}
}

func (c *commentCommandsImpl) AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	author, err := resolveUser(ctx, c.userReads, authorID)
	if err != nil {
		return nil, err
	}

	it, err := resolveItem(ctx, c.itemReads, itemID)
	if err != nil {
		return nil, err
	}

	if err := c.mayComment(ctx, author.ID, it.ID); err != nil {
		return nil, err
	}

	id, createdAt, err := c.commentRepo.Create(ctx, it.ID, author.ID, text)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.CommentView{
		ID:         id,
		ItemID:     it.ID,
		AuthorName: author.Name,
		Text:       text,
		CreatedAt:  createdAt,
	}, nil
}

func (c *commentCommandsImpl) mayComment(ctx context.Context, userID, itemID uuid.UUID) error {
	now := c.clock.Now()

	completed, err := c.history.CountCompletedForItem(ctx, userID, itemID, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if completed > 0 {
		return nil
	}

	upcoming, err := c.history.CountUpcomingForItem(ctx, userID, itemID, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if upcoming > 0 {
		return ErrFutureBookingOnly
	}

	return ErrNeverBooked
}
