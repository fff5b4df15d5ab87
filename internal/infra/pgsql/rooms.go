package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, room_number, room_type, price_per_night_cents, description, is_available, created_at, updated_at`

func scanRoom(row pgx.Row) (Rooms, error) {
	var r Rooms
	err := row.Scan(&r.ID, &r.RoomNumber, &r.RoomType, &r.PricePerNightCents, &r.Description, &r.IsAvailable, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func collectRooms(rows pgx.Rows, err error) ([]Rooms, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Rooms, error) { return scanRoom(r) })
}

const createRoom = `
INSERT INTO rooms (id, room_number, room_type, price_per_night_cents, description, is_available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id`

type CreateRoomParams struct {
	ID                 uuid.UUID
	RoomNumber         string
	RoomType           string
	PricePerNightCents int64
	Description        pgtype.Text
	IsAvailable        bool
	CreatedAt          pgtype.Timestamptz
}

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg CreateRoomParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createRoom,
		arg.ID, arg.RoomNumber, arg.RoomType, arg.PricePerNightCents, arg.Description, arg.IsAvailable, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const updateRoom = `
UPDATE rooms
SET room_number = $2, room_type = $3, price_per_night_cents = $4, description = $5, is_available = $6, updated_at = $7
WHERE id = $1`

type UpdateRoomParams struct {
	ID                 uuid.UUID
	RoomNumber         string
	RoomType           string
	PricePerNightCents int64
	Description        pgtype.Text
	IsAvailable        bool
	UpdatedAt          pgtype.Timestamptz
}

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg UpdateRoomParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRoom,
		arg.ID, arg.RoomNumber, arg.RoomType, arg.PricePerNightCents, arg.Description, arg.IsAvailable, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteRoom = `DELETE FROM rooms WHERE id = $1`

func (q *Queries) DeleteRoom(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteRoom, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getRoomByID = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	return scanRoom(db.QueryRow(ctx, getRoomByID, id))
}

const getRoomByNumber = `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

func (q *Queries) GetRoomByNumber(ctx context.Context, db DBTX, number string) (Rooms, error) {
	return scanRoom(db.QueryRow(ctx, getRoomByNumber, number))
}

const listRooms = `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number, id`

func (q *Queries) ListRooms(ctx context.Context, db DBTX) ([]Rooms, error) {
	return collectRooms(db.Query(ctx, listRooms))
}

const listFlaggedAvailableRooms = `SELECT ` + roomColumns + ` FROM rooms WHERE is_available ORDER BY room_number, id`

// ListFlaggedAvailableRooms returns rooms whose manual availability flag is set.
func (q *Queries) ListFlaggedAvailableRooms(ctx context.Context, db DBTX) ([]Rooms, error) {
	return collectRooms(db.Query(ctx, listFlaggedAvailableRooms))
}

const countRooms = `SELECT count(*) FROM rooms`

func (q *Queries) CountRooms(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countRooms).Scan(&n)
	return n, err
}

// Overlap is half-open: a stay ending on the day another begins does not conflict.
const conflictPredicate = `
	res.room_id = rm.id
	AND res.status <> 'cancelled'
	AND res.check_in < $2
	AND res.check_out > $1`

const listRoomAvailability = `
SELECT ` + roomColumns + `,
       rm.is_available AND NOT EXISTS (
           SELECT 1 FROM reservations res WHERE` + conflictPredicate + `
       ) AS available
FROM rooms rm
ORDER BY room_number, id`

type ListRoomAvailabilityRow struct {
	Rooms
	Available bool
}

func (q *Queries) ListRoomAvailability(ctx context.Context, db DBTX, checkIn, checkOut pgtype.Date) ([]ListRoomAvailabilityRow, error) {
	rows, err := db.Query(ctx, listRoomAvailability, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (ListRoomAvailabilityRow, error) {
		var row ListRoomAvailabilityRow
		err := r.Scan(
			&row.ID, &row.RoomNumber, &row.RoomType, &row.PricePerNightCents, &row.Description,
			&row.IsAvailable, &row.CreatedAt, &row.UpdatedAt, &row.Available,
		)
		return row, err
	})
}

const roomHasConflict = `
SELECT EXISTS (
    SELECT 1 FROM reservations res, rooms rm
    WHERE rm.id = $3 AND` + conflictPredicate + `
      AND ($4::uuid IS NULL OR res.id <> $4)
)`

type RoomHasConflictParams struct {
	CheckIn   pgtype.Date
	CheckOut  pgtype.Date
	RoomID    uuid.UUID
	ExcludeID pgtype.UUID
}

// RoomHasConflict reports whether an active reservation other than
// ExcludeID overlaps [CheckIn, CheckOut) on the room.
func (q *Queries) RoomHasConflict(ctx context.Context, db DBTX, arg RoomHasConflictParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, roomHasConflict, arg.CheckIn, arg.CheckOut, arg.RoomID, arg.ExcludeID).Scan(&exists)
	return exists, err
}

const listRoomsByIDs = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ANY($1::uuid[]) ORDER BY room_number`

func (q *Queries) ListRoomsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Rooms, error) {
	return collectRooms(db.Query(ctx, listRoomsByIDs, ids))
}
