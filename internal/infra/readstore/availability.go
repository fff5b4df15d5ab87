package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/pgconv"
	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadQueries interface {
	ListRoomAvailability(ctx context.Context, db pgsql.DBTX, checkIn, checkOut pgtype.Date) ([]pgsql.ListRoomAvailabilityRow, error)
	RoomHasConflict(ctx context.Context, db pgsql.DBTX, arg pgsql.RoomHasConflictParams) (bool, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      pgsql.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db pgsql.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

// ListAvailability returns every room with its availability for the period.
func (r *AvailabilityReadStore) ListAvailability(ctx context.Context, period reservation.StayPeriod) ([]*queries.RoomAvailability, error) {
	rows, err := r.queries.ListRoomAvailability(ctx, r.db,
		pgconv.DateToPgtype(period.CheckIn()), pgconv.DateToPgtype(period.CheckOut()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room availability", err)
	}

	out := make([]*queries.RoomAvailability, len(rows))
	for i, row := range rows {
		out[i] = &queries.RoomAvailability{
			RoomID:             row.ID,
			RoomNumber:         row.RoomNumber,
			RoomType:           row.RoomType,
			PricePerNightCents: row.PricePerNightCents,
			Description:        pgconv.StringFromPgtype(row.Description),
			IsAvailable:        row.Available,
		}
	}
	return out, nil
}

func (r *AvailabilityReadStore) HasConflict(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	return r.HasConflictExcluding(ctx, roomID, period, nil)
}

func (r *AvailabilityReadStore) HasConflictExcluding(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod, exclude *uuid.UUID) (bool, error) {
	conflict, err := r.queries.RoomHasConflict(ctx, r.db, pgsql.RoomHasConflictParams{
		CheckIn:   pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(period.CheckOut()),
		RoomID:    roomID,
		ExcludeID: pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room conflicts", err)
	}
	return conflict, nil
}
