package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Guests struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Rooms struct {
	ID                 uuid.UUID
	RoomNumber         string
	RoomType           string
	PricePerNightCents int64
	Description        pgtype.Text
	IsAvailable        bool
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type Reservations struct {
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
	UpdatedAt       pgtype.Timestamptz
}
