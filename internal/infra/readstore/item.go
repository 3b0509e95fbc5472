package readstore

import (
	"context"

	"itemshare/internal/domain/item"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db infra.DBTX
}

func NewItemReadStore(db infra.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*item.Snapshot, error) {
	var (
		itemID, ownerID pgtype.UUID
		name            string
		available       bool
	)
	err := r.db.QueryRow(ctx,
		"SELECT id, owner_id, name, available FROM items WHERE id = $1",
		pgconv.UUIDToPgtype(id),
	).Scan(&itemID, &ownerID, &name, &available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return &item.Snapshot{
		ID:        pgconv.UUIDFromPgtype(itemID),
		OwnerID:   pgconv.UUIDFromPgtype(ownerID),
		Name:      name,
		Available: available,
	}, nil
}
