package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/readstore"
	"hotel-management/internal/infra/repository"
	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/usecase/queries"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.NewKind("transaction failed after max retries", errs.ErrConflict)
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgsql.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable makes the overlap check and the insert of a booking atomic.
// Serialization failures are retried.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			return giveUp(err, attempt, maxRetries)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

// giveUp marks err as exhausted only when retries ran out on a retryable
// failure. Anything else keeps its own kind.
func giveUp(err error, attempt, maxRetries int) error {
	if attempt < maxRetries || !isRetryableError(err) {
		return err
	}
	slog.Error("transaction failed after max retries",
		"attempts", attempt+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	guestRepo       shared.GuestRepository
	roomRepo        shared.RoomRepository
	reservationRepo shared.ReservationRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() pgsql.DBTX {
	return t.dbtx
}

func (t *pgTx) Guests() shared.GuestRepository {
	if t.guestRepo == nil {
		t.guestRepo = repository.NewGuestRepository(t.uow.q)
	}
	return t.guestRepo
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.q)
	}
	return t.roomRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgsql.DBTX

	// Lazy-initialized readstores
	guestStore        *readstore.GuestReadStore
	roomStore         *readstore.RoomReadStore
	reservationStore  *readstore.ReservationReadStore
	availabilityStore *readstore.AvailabilityReadStore
}

func (r *commandReads) guests() *readstore.GuestReadStore {
	if r.guestStore == nil {
		r.guestStore = readstore.NewGuestReadStore(r.uow.q, r.dbtx)
	}
	return r.guestStore
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) GuestByID(ctx context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	g, err := r.guests().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toGuestSnapshot(g), nil
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	rm, err := r.rooms().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoomSnapshot(rm), nil
}

func (r *commandReads) RoomByNumber(ctx context.Context, number string) (*shared.RoomSnapshot, error) {
	rm, err := r.rooms().FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return toRoomSnapshot(rm), nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}

	res, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ReservationSnapshot{
		ID:              res.ID,
		GuestID:         res.GuestID,
		RoomID:          res.RoomID,
		CheckIn:         res.CheckIn,
		CheckOut:        res.CheckOut,
		NumberOfGuests:  res.NumberOfGuests,
		SpecialRequests: res.SpecialRequests,
		Status:          res.Status,
		PaymentStatus:   res.PaymentStatus,
		TotalPriceCents: res.TotalPriceCents,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) RoomHasConflict(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod, exclude *uuid.UUID) (bool, error) {
	if r.availabilityStore == nil {
		r.availabilityStore = readstore.NewAvailabilityReadStore(r.uow.q, r.dbtx)
	}
	return r.availabilityStore.HasConflictExcluding(ctx, roomID, period, exclude)
}

func (r *commandReads) Guests(ctx context.Context) ([]shared.GuestSnapshot, error) {
	guests, err := r.guests().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]shared.GuestSnapshot, len(guests))
	for i, g := range guests {
		out[i] = *toGuestSnapshot(g)
	}
	return out, nil
}

func (r *commandReads) BookableRooms(ctx context.Context) ([]shared.RoomSnapshot, error) {
	rooms, err := r.rooms().ListFlaggedAvailable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]shared.RoomSnapshot, len(rooms))
	for i, rm := range rooms {
		out[i] = *toRoomSnapshot(rm)
	}
	return out, nil
}

func toGuestSnapshot(g *queries.GuestView) *shared.GuestSnapshot {
	return &shared.GuestSnapshot{
		ID:        g.ID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toRoomSnapshot(rm *queries.RoomView) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 rm.ID,
		Number:             rm.RoomNumber,
		Type:               rm.RoomType,
		PricePerNightCents: rm.PricePerNightCents,
		Description:        rm.Description,
		IsAvailable:        rm.IsAvailable,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}
