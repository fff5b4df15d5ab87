package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"

	"hotel-management/internal/domain/analytics"
	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type StayReadQueries interface {
	CountRooms(ctx context.Context, db pgsql.DBTX) (int64, error)
	ListStays(ctx context.Context, db pgsql.DBTX, from, to pgtype.Date) ([]pgsql.ListStaysRow, error)
}

// StayReadStore feeds the reporting aggregates. It runs on the DBTX it is
// handed so one report reads one snapshot.
type StayReadStore struct {
	queries StayReadQueries
}

func NewStayReadStore(queries StayReadQueries) *StayReadStore {
	return &StayReadStore{
		queries: queries,
	}
}

func (r *StayReadStore) CountRooms(ctx context.Context, db pgsql.DBTX) (int, error) {
	n, err := r.queries.CountRooms(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return int(n), nil
}

func (r *StayReadStore) ListStays(ctx context.Context, db pgsql.DBTX, dr analytics.DateRange) ([]analytics.Stay, error) {
	rows, err := r.queries.ListStays(ctx, db, pgconv.DateToPgtype(dr.Start()), pgconv.DateToPgtype(dr.End()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stays", err)
	}

	out := make([]analytics.Stay, 0, len(rows))
	for _, row := range rows {
		s, err := toStay(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stay row", err)
		}
		out = append(out, s)
	}
	return out, nil
}

func toStay(row pgsql.ListStaysRow) (analytics.Stay, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return analytics.Stay{}, err
	}
	payment, err := reservation.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return analytics.Stay{}, err
	}
	total, err := money.FromCents(row.TotalPriceCents)
	if err != nil {
		return analytics.Stay{}, err
	}
	return analytics.Stay{
		ReservationID: row.ID,
		GuestID:       row.GuestID,
		GuestName:     row.GuestName,
		GuestEmail:    row.GuestEmail,
		GuestPhone:    row.GuestPhone,
		RoomID:        row.RoomID,
		RoomNumber:    row.RoomNumber,
		RoomType:      row.RoomType,
		CheckIn:       pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:      pgconv.DateFromPgtype(row.CheckOut),
		Status:        status,
		Payment:       payment,
		TotalPrice:    total,
	}, nil
}
