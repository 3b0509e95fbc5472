package repository

import (
	"context"
	"time"

	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommentRepository struct {
	db infra.DBTX
}

func NewCommentRepository(db infra.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (uuid.UUID, time.Time, error) {
	var (
		id      pgtype.UUID
		created pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`INSERT INTO comments (id, item_id, author_id, text)
		 VALUES (gen_random_uuid(), $1, $2, $3)
		 RETURNING id, created_at`,
		pgconv.UUIDToPgtype(itemID),
		pgconv.UUIDToPgtype(authorID),
		text,
	).Scan(&id, &created)
	if err != nil {
		return uuid.Nil, time.Time{}, infra.WrapRepoErr("failed to create comment", err)
	}

	return pgconv.UUIDFromPgtype(id), pgconv.TimeFromPgtype(created), nil
}
