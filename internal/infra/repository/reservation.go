package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) (uuid.UUID, error)
	UpdateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

// ReservationRepository runs on the transaction handed to each call.
type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
