package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/pgconv"
	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Rooms, error)
	GetRoomByNumber(ctx context.Context, db pgsql.DBTX, number string) (pgsql.Rooms, error)
	ListRooms(ctx context.Context, db pgsql.DBTX) ([]pgsql.Rooms, error)
	ListFlaggedAvailableRooms(ctx context.Context, db pgsql.DBTX) ([]pgsql.Rooms, error)
	ListRoomsByIDs(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID) ([]pgsql.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      pgsql.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db pgsql.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) FindByNumber(ctx context.Context, number string) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByNumber(ctx, r.db, number)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by number", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return toRoomViews(rows), nil
}

func (r *RoomReadStore) ListFlaggedAvailable(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListFlaggedAvailableRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	return toRoomViews(rows), nil
}

func (r *RoomReadStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRoomsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by IDs", err)
	}
	return toRoomViews(rows), nil
}

func toRoomViews(rows []pgsql.Rooms) []*queries.RoomView {
	out := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		out[i] = toRoomView(row)
	}
	return out
}

func toRoomView(row pgsql.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:                 row.ID,
		RoomNumber:         row.RoomNumber,
		RoomType:           row.RoomType,
		PricePerNightCents: row.PricePerNightCents,
		Description:        pgconv.StringFromPgtype(row.Description),
		IsAvailable:        row.IsAvailable,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
