package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"hotel-management/internal/domain/guest"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type GuestWriteQueries interface {
	CreateGuest(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateGuestParams) (uuid.UUID, error)
	UpdateGuest(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateGuestParams) (int64, error)
	DeleteGuest(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

// GuestRepository runs on the transaction handed to each call.
type GuestRepository struct {
	queries GuestWriteQueries
}

func NewGuestRepository(queries GuestWriteQueries) *GuestRepository {
	return &GuestRepository{queries: queries}
}

func (r *GuestRepository) Create(ctx context.Context, tx pgsql.DBTX, g *guest.Guest) (uuid.UUID, error) {
	id, err := r.queries.CreateGuest(ctx, tx, converter.GuestToCreateParams(g))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}
	return id, nil
}

func (r *GuestRepository) Update(ctx context.Context, tx pgsql.DBTX, g *guest.Guest) error {
	n, err := r.queries.UpdateGuest(ctx, tx, converter.GuestToUpdateParams(g))
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteGuest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete guest", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}
