package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra"
	"hotel-management/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomAvailability struct {
	RoomID             uuid.UUID `json:"room_id"`
	RoomNumber         string    `json:"room_number"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Description        string    `json:"description"`
	IsAvailable        bool      `json:"is_available"`
}

// RoomAvailabilityCheck answers the single-room query.
type RoomAvailabilityCheck struct {
	RoomID      uuid.UUID `json:"room_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	IsAvailable bool      `json:"is_available"`
}

type AvailabilityReadStore interface {
	ListAvailability(ctx context.Context, period reservation.StayPeriod) ([]*RoomAvailability, error)
	HasConflict(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) (bool, error)
}

type AvailabilityQueries interface {
	IsRoomAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*RoomAvailabilityCheck, error)
	ListAvailability(ctx context.Context, checkIn, checkOut time.Time) ([]*RoomAvailability, error)
}

type availabilityQueriesImpl struct {
	rooms        RoomReadStore
	availability AvailabilityReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, availability AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, availability: availability}
}

// IsRoomAvailable is true when the room's manual flag is set and no active
// reservation overlaps [checkIn, checkOut).
func (q *availabilityQueriesImpl) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*RoomAvailabilityCheck, error) {
	period, err := stayWindow(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	room, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	check := &RoomAvailabilityCheck{
		RoomID:   roomID,
		CheckIn:  period.CheckIn(),
		CheckOut: period.CheckOut(),
	}
	if !room.IsAvailable {
		return check, nil
	}

	conflict, err := q.availability.HasConflict(ctx, roomID, period)
	if err != nil {
		return nil, err
	}
	check.IsAvailable = !conflict
	return check, nil
}

func (q *availabilityQueriesImpl) ListAvailability(ctx context.Context, checkIn, checkOut time.Time) ([]*RoomAvailability, error) {
	period, err := stayWindow(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return q.availability.ListAvailability(ctx, period)
}

// Zero-night and inverted windows never reach the store.
func stayWindow(checkIn, checkOut time.Time) (reservation.StayPeriod, error) {
	period, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return reservation.StayPeriod{}, errs.Mark(err, ErrInvalidDateRange)
	}
	return period, nil
}
