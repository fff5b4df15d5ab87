package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"

	"hotel-management/internal/domain/guest"
	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/domain/room"
	"hotel-management/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: ReadCommitted transaction with retry logic for guest and room writes
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: check-then-insert writes such as booking a room
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Guests() GuestRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

type CommandReads interface {
	GuestByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomByNumber(ctx context.Context, number string) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// RoomHasConflict ignores cancelled reservations and the excluded one.
	RoomHasConflict(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod, exclude *uuid.UUID) (bool, error)
	Guests(ctx context.Context) ([]GuestSnapshot, error)
	BookableRooms(ctx context.Context) ([]RoomSnapshot, error)
}

type GuestRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, g *guest.Guest) (uuid.UUID, error)
	Update(ctx context.Context, tx pgsql.DBTX, g *guest.Guest) error
	Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx pgsql.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, tx pgsql.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error
}
