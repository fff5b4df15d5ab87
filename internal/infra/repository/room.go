package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"hotel-management/internal/domain/room"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateRoomParams) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

// RoomRepository runs on the transaction handed to each call.
type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) Create(ctx context.Context, tx pgsql.DBTX, rm *room.Room) (uuid.UUID, error) {
	id, err := r.queries.CreateRoom(ctx, tx, converter.RoomToCreateParams(rm))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx pgsql.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, tx, converter.RoomToUpdateParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
