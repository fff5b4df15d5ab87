package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const guestColumns = `id, name, email, phone, created_at, updated_at`

func scanGuest(row pgx.Row) (Guests, error) {
	var g Guests
	err := row.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

const createGuest = `
INSERT INTO guests (id, name, email, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`

type CreateGuestParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateGuest(ctx context.Context, db DBTX, arg CreateGuestParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createGuest, arg.ID, arg.Name, arg.Email, arg.Phone, arg.CreatedAt).Scan(&id)
	return id, err
}

const updateGuest = `
UPDATE guests
SET name = $2, email = $3, phone = $4, updated_at = $5
WHERE id = $1`

type UpdateGuestParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateGuest(ctx context.Context, db DBTX, arg UpdateGuestParams) (int64, error) {
	tag, err := db.Exec(ctx, updateGuest, arg.ID, arg.Name, arg.Email, arg.Phone, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteGuest = `DELETE FROM guests WHERE id = $1`

func (q *Queries) DeleteGuest(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteGuest, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getGuestByID = `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

func (q *Queries) GetGuestByID(ctx context.Context, db DBTX, id uuid.UUID) (Guests, error) {
	return scanGuest(db.QueryRow(ctx, getGuestByID, id))
}

const listGuests = `SELECT ` + guestColumns + ` FROM guests ORDER BY name, id`

func (q *Queries) ListGuests(ctx context.Context, db DBTX) ([]Guests, error) {
	rows, err := db.Query(ctx, listGuests)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Guests, error) { return scanGuest(r) })
}

const listGuestsByIDs = `SELECT ` + guestColumns + ` FROM guests WHERE id = ANY($1::uuid[]) ORDER BY name, id`

func (q *Queries) ListGuestsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Guests, error) {
	rows, err := db.Query(ctx, listGuestsByIDs, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (Guests, error) { return scanGuest(r) })
}
