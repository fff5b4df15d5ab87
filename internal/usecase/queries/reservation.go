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

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	GuestID         uuid.UUID `json:"guest_id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	RoomType        string    `json:"room_type"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	NumberOfGuests  int       `json:"number_of_guests"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (v *ReservationView) Nights() int {
	return reservation.DaysBetween(v.CheckIn, v.CheckOut)
}

// ReservationFilters narrows a listing; nil fields do not filter.
type ReservationFilters struct {
	RoomID        *uuid.UUID
	GuestID       *uuid.UUID
	Status        *string
	PaymentStatus *string
	CheckInFrom   *time.Time
	CheckInTo     *time.Time
}

// ReservationPage is the keyset position and size handed to the store.
type ReservationPage struct {
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filters ReservationFilters, page ReservationPage) ([]*ReservationView, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if err := validateFilters(&filters); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	// #nosec G115 -- bounded by MaxListLimit
	page := ReservationPage{Limit: int32(limit + 1)}
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		page.AfterCreatedAt = &lastCreatedAt
		page.AfterID = &lastID
	}

	rows, err := q.readStore.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*ReservationView, error) {
	if len(ids) == 0 {
		return []*ReservationView{}, nil
	}
	return q.readStore.ListByIDs(ctx, ids)
}

// validateFilters normalises enum filters to their stored spelling.
func validateFilters(f *ReservationFilters) error {
	if f.Status != nil {
		st, err := reservation.ParseStatus(*f.Status)
		if err != nil {
			return errs.Mark(err, ErrInvalidFilter)
		}
		s := st.String()
		f.Status = &s
	}
	if f.PaymentStatus != nil {
		ps, err := reservation.ParsePaymentStatus(*f.PaymentStatus)
		if err != nil {
			return errs.Mark(err, ErrInvalidFilter)
		}
		s := ps.String()
		f.PaymentStatus = &s
	}
	if f.CheckInFrom != nil && f.CheckInTo != nil && f.CheckInFrom.After(*f.CheckInTo) {
		return errs.Mark(errs.New("check_in_from must not be after check_in_to"), ErrInvalidFilter)
	}
	return nil
}
