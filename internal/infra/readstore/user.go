package readstore

import (
	"context"

	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.Snapshot, error) {
	var (
		userID pgtype.UUID
		name   string
	)
	err := r.db.QueryRow(ctx,
		"SELECT id, name FROM users WHERE id = $1",
		pgconv.UUIDToPgtype(id),
	).Scan(&userID, &name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &user.Snapshot{
		ID:   pgconv.UUIDFromPgtype(userID),
		Name: name,
	}, nil
}
