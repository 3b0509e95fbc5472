package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"created"`
}

func FromCommentView(cv *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         cv.ID,
		Text:       cv.Text,
		AuthorName: cv.AuthorName,
		CreatedAt:  cv.CreatedAt,
	}
}
