package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `
INSERT INTO reservations (
    id, guest_id, room_id, check_in, check_out, number_of_guests, special_requests,
    status, payment_status, total_price_cents, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING id`

type CreateReservationParams struct {
	ID              uuid.UUID
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	NumberOfGuests  int32
	SpecialRequests pgtype.Text
	Status          string
	PaymentStatus   string
	TotalPriceCents int64
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createReservation,
		arg.ID, arg.GuestID, arg.RoomID, arg.CheckIn, arg.CheckOut, arg.NumberOfGuests, arg.SpecialRequests,
		arg.Status, arg.PaymentStatus, arg.TotalPriceCents, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const updateReservation = `
UPDATE reservations
SET guest_id = $2, room_id = $3, check_in = $4, check_out = $5, number_of_guests = $6,
    special_requests = $7, status = $8, payment_status = $9, total_price_cents = $10, updated_at = $11
WHERE id = $1`

type UpdateReservationParams struct {
	ID              uuid.UUID
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	NumberOfGuests  int32
	SpecialRequests pgtype.Text
	Status          string
	PaymentStatus   string
	TotalPriceCents int64
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID, arg.GuestID, arg.RoomID, arg.CheckIn, arg.CheckOut, arg.NumberOfGuests,
		arg.SpecialRequests, arg.Status, arg.PaymentStatus, arg.TotalPriceCents, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReservation = `DELETE FROM reservations WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const reservationDetailSelect = `
SELECT res.id, res.guest_id, res.room_id, res.check_in, res.check_out, res.number_of_guests,
       res.special_requests, res.status, res.payment_status, res.total_price_cents,
       res.created_at, res.updated_at,
       g.name, g.email, rm.room_number, rm.room_type
FROM reservations res
JOIN guests g ON g.id = res.guest_id
JOIN rooms rm ON rm.id = res.room_id`

// ReservationDetailRow is a reservation joined with its guest and room labels.
type ReservationDetailRow struct {
	Reservations
	GuestName  string
	GuestEmail string
	RoomNumber string
	RoomType   string
}

func scanReservationDetail(row pgx.Row) (ReservationDetailRow, error) {
	var r ReservationDetailRow
	err := row.Scan(
		&r.ID, &r.GuestID, &r.RoomID, &r.CheckIn, &r.CheckOut, &r.NumberOfGuests,
		&r.SpecialRequests, &r.Status, &r.PaymentStatus, &r.TotalPriceCents,
		&r.CreatedAt, &r.UpdatedAt,
		&r.GuestName, &r.GuestEmail, &r.RoomNumber, &r.RoomType,
	)
	return r, err
}

const getReservationByID = reservationDetailSelect + `
WHERE res.id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (ReservationDetailRow, error) {
	return scanReservationDetail(db.QueryRow(ctx, getReservationByID, id))
}

const listReservations = reservationDetailSelect + `
WHERE ($1::uuid IS NULL OR res.room_id = $1)
  AND ($2::uuid IS NULL OR res.guest_id = $2)
  AND ($3::text IS NULL OR res.status = $3)
  AND ($4::text IS NULL OR res.payment_status = $4)
  AND ($5::date IS NULL OR res.check_in >= $5)
  AND ($6::date IS NULL OR res.check_in <= $6)
  AND ($7::timestamptz IS NULL OR (res.created_at, res.id) < ($7, $8::uuid))
ORDER BY res.created_at DESC, res.id DESC
LIMIT $9`

// ListReservationsParams filters are optional; a null AfterCreatedAt starts
// at the newest reservation.
type ListReservationsParams struct {
	RoomID         pgtype.UUID
	GuestID        pgtype.UUID
	Status         pgtype.Text
	PaymentStatus  pgtype.Text
	CheckInFrom    pgtype.Date
	CheckInTo      pgtype.Date
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]ReservationDetailRow, error) {
	rows, err := db.Query(ctx, listReservations,
		arg.RoomID, arg.GuestID, arg.Status, arg.PaymentStatus, arg.CheckInFrom, arg.CheckInTo,
		arg.AfterCreatedAt, arg.AfterID, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ReservationDetailRow, error) { return scanReservationDetail(r) })
}

const listStays = `
SELECT res.id, res.guest_id, g.name, g.email, g.phone,
       res.room_id, rm.room_number, rm.room_type,
       res.check_in, res.check_out, res.status, res.payment_status, res.total_price_cents
FROM reservations res
JOIN guests g ON g.id = res.guest_id
JOIN rooms rm ON rm.id = res.room_id
WHERE res.check_in <= $2 AND res.check_out >= $1
ORDER BY res.check_in, res.id`

type ListStaysRow struct {
	ID              uuid.UUID
	GuestID         uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	RoomID          uuid.UUID
	RoomNumber      string
	RoomType        string
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Status          string
	PaymentStatus   string
	TotalPriceCents int64
}

// ListStays loads every reservation touching [from, to]: all stays checking in
// inside the window plus those already running when it opens.
func (q *Queries) ListStays(ctx context.Context, db DBTX, from, to pgtype.Date) ([]ListStaysRow, error) {
	rows, err := db.Query(ctx, listStays, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ListStaysRow, error) {
		var s ListStaysRow
		err := r.Scan(
			&s.ID, &s.GuestID, &s.GuestName, &s.GuestEmail, &s.GuestPhone,
			&s.RoomID, &s.RoomNumber, &s.RoomType,
			&s.CheckIn, &s.CheckOut, &s.Status, &s.PaymentStatus, &s.TotalPriceCents,
		)
		return s, err
	})
}

const listReservationsByIDs = reservationDetailSelect + `
WHERE res.id = ANY($1::uuid[])
ORDER BY res.created_at, res.id`

func (q *Queries) ListReservationsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]ReservationDetailRow, error) {
	rows, err := db.Query(ctx, listReservationsByIDs, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ReservationDetailRow, error) { return scanReservationDetail(r) })
}
