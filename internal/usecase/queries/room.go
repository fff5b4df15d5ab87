package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"hotel-management/internal/infra"

	"github.com/google/uuid"
)

type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	RoomNumber         string    `json:"room_number"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Description        string    `json:"description"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListFlaggedAvailable(ctx context.Context) ([]*RoomView, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	// ListAvailable returns rooms whose manual flag is set, ignoring bookings.
	ListAvailable(ctx context.Context) ([]*RoomView, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	r, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return r, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.List(ctx)
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.ListFlaggedAvailable(ctx)
}

func (q *roomQueriesImpl) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*RoomView, error) {
	if len(ids) == 0 {
		return []*RoomView{}, nil
	}
	return q.readStore.ListByIDs(ctx, ids)
}
