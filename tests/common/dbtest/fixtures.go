//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestGuest(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO guests (name, email, phone) VALUES ($1, $2, '+1-555-0100') RETURNING id",
		name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, number, roomType string, priceCents int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (room_number, room_type, price_per_night_cents) VALUES ($1, $2, $3) RETURNING id",
		number, roomType, priceCents).Scan(&id)
	require.NoError(t, err)
	return id
}

type ReservationFixture struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Status          string
	PaymentStatus   string
	TotalPriceCents int64
}

// CreateTestReservation writes the row directly, bypassing pricing and
// transition rules so tests can set up any state.
func CreateTestReservation(t *testing.T, db DBLike, f ReservationFixture) uuid.UUID {
	t.Helper()

	if f.Status == "" {
		f.Status = "pending"
	}
	if f.PaymentStatus == "" {
		f.PaymentStatus = "pending"
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations
		    (guest_id, room_id, check_in, check_out, number_of_guests, status, payment_status, total_price_cents)
		VALUES ($1, $2, $3, $4, 1, $5, $6, $7)
		RETURNING id`,
		f.GuestID, f.RoomID, f.CheckIn, f.CheckOut, f.Status, f.PaymentStatus, f.TotalPriceCents).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
