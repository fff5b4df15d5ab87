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

type GuestReadQueries interface {
	GetGuestByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Guests, error)
	ListGuests(ctx context.Context, db pgsql.DBTX) ([]pgsql.Guests, error)
	ListGuestsByIDs(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID) ([]pgsql.Guests, error)
}

type GuestReadStore struct {
	queries GuestReadQueries
	db      pgsql.DBTX
}

func NewGuestReadStore(queries GuestReadQueries, db pgsql.DBTX) *GuestReadStore {
	return &GuestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	row, err := r.queries.GetGuestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	return toGuestView(row), nil
}

func (r *GuestReadStore) List(ctx context.Context) ([]*queries.GuestView, error) {
	rows, err := r.queries.ListGuests(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	return toGuestViews(rows), nil
}

func (r *GuestReadStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.GuestView, error) {
	rows, err := r.queries.ListGuestsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests by IDs", err)
	}
	return toGuestViews(rows), nil
}

func toGuestViews(rows []pgsql.Guests) []*queries.GuestView {
	out := make([]*queries.GuestView, len(rows))
	for i, row := range rows {
		out[i] = toGuestView(row)
	}
	return out
}

func toGuestView(row pgsql.Guests) *queries.GuestView {
	return &queries.GuestView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
