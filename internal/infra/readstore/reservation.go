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

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.ReservationDetailRow, error)
	ListReservations(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsParams) ([]pgsql.ReservationDetailRow, error)
	ListReservationsByIDs(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID) ([]pgsql.ReservationDetailRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

// List returns one keyset page, newest first.
func (r *ReservationReadStore) List(ctx context.Context, filters queries.ReservationFilters, page queries.ReservationPage) ([]*queries.ReservationView, error) {
	params := pgsql.ListReservationsParams{
		RoomID:         pgconv.UUIDPtrToPgtype(filters.RoomID),
		GuestID:        pgconv.UUIDPtrToPgtype(filters.GuestID),
		Status:         pgconv.StringPtrToPgtype(filters.Status),
		PaymentStatus:  pgconv.StringPtrToPgtype(filters.PaymentStatus),
		CheckInFrom:    pgconv.DatePtrToPgtype(filters.CheckInFrom),
		CheckInTo:      pgconv.DatePtrToPgtype(filters.CheckInTo),
		AfterCreatedAt: pgconv.TimePtrToPgtype(page.AfterCreatedAt),
		AfterID:        pgconv.UUIDPtrToPgtype(page.AfterID),
		Limit:          page.Limit,
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by IDs", err)
	}
	return toReservationViews(rows), nil
}

func toReservationViews(rows []pgsql.ReservationDetailRow) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		out[i] = toReservationView(row)
	}
	return out
}

func toReservationView(row pgsql.ReservationDetailRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		GuestID:         row.GuestID,
		GuestName:       row.GuestName,
		GuestEmail:      row.GuestEmail,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		RoomType:        row.RoomType,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		NumberOfGuests:  int(row.NumberOfGuests),
		SpecialRequests: pgconv.StringFromPgtype(row.SpecialRequests),
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		TotalPriceCents: row.TotalPriceCents,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
