package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"hotel-management/internal/infra"

	"github.com/google/uuid"
)

type GuestView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context) ([]*GuestView, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*GuestView, error)
}

type GuestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context) ([]*GuestView, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	readStore GuestReadStore
}

func NewGuestQueries(readStore GuestReadStore) GuestQueries {
	return &guestQueriesImpl{readStore: readStore}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	g, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return g, nil
}

func (q *guestQueriesImpl) List(ctx context.Context) ([]*GuestView, error) {
	return q.readStore.List(ctx)
}

func (q *guestQueriesImpl) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*GuestView, error) {
	if len(ids) == 0 {
		return []*GuestView{}, nil
	}
	return q.readStore.ListByIDs(ctx, ids)
}
