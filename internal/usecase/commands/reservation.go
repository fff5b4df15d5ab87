package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/pkg/patch"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ReservationInput struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
	SpecialRequests string
}

func (in ReservationInput) booking() (reservation.Booking, error) {
	period, err := reservation.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return reservation.Booking{}, err
	}
	guests, err := reservation.NewGuestCount(in.NumberOfGuests)
	if err != nil {
		return reservation.Booking{}, err
	}
	requests, err := reservation.NewSpecialRequests(in.SpecialRequests)
	if err != nil {
		return reservation.Booking{}, err
	}
	return reservation.Booking{
		GuestID:         in.GuestID,
		RoomID:          in.RoomID,
		Period:          period,
		Guests:          guests,
		SpecialRequests: requests,
	}, nil
}

// UpdateReservationInput replaces the booking fields. Nil statuses are left as they are.
type UpdateReservationInput struct {
	ReservationInput
	Status        *string
	PaymentStatus *string
}

type PopulateReservationsInput struct {
	// Kind is mixed (default), business, vacation or weekend.
	Kind  string
	Count int
	Seed  *uint64
}

type ReservationCommands interface {
	Create(ctx context.Context, in ReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkCreate(ctx context.Context, in []ReservationInput) (*BulkResult, error)
	Populate(ctx context.Context, in PopulateReservationsInput) (*BulkResult, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	services *reservation.Services
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:   uow,
		clock: clk,
		services: &reservation.Services{
			Clock:           clk,
			PriceCalculator: reservation.NewNightlyPriceCalculator(),
		},
	}
}

// Create books a room. The overlap check and the insert share one
// serializable transaction; the exclusion constraint backs it up.
func (uc *reservationUseCaseImpl) Create(ctx context.Context, in ReservationInput) (uuid.UUID, error) {
	b, err := in.booking()
	if err != nil {
		return uuid.Nil, translate(err, reservationErrors)
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomSnap, derr := uc.loadParties(ctx, tx.Reads(), b)
		if derr != nil {
			return derr
		}

		res, derr := reservation.NewReservation(uc.services, b, roomSnap.Spec())
		if derr != nil {
			return derr
		}
		if derr = uc.ensureFree(ctx, tx.Reads(), res, nil); derr != nil {
			return derr
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, translate(err, reservationErrors)
	}
	return createdID, nil
}

func (uc *reservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput) error {
	b, err := in.booking()
	if err != nil {
		return translate(err, reservationErrors)
	}

	var status *reservation.Status
	if in.Status != nil {
		st, perr := reservation.ParseStatus(*in.Status)
		if perr != nil {
			return translate(perr, reservationErrors)
		}
		status = &st
	}
	var payment *reservation.PaymentStatus
	if in.PaymentStatus != nil {
		ps, perr := reservation.ParsePaymentStatus(*in.PaymentStatus)
		if perr != nil {
			return translate(perr, reservationErrors)
		}
		payment = &ps
	}

	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.load(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		roomSnap, derr := uc.loadParties(ctx, tx.Reads(), b)
		if derr != nil {
			return derr
		}

		if derr = res.Revise(uc.services, b, roomSnap.Spec()); derr != nil {
			return derr
		}
		now := uc.clock.Now()
		if derr = res.TransitionStatus(patch.Coalesce(status, res.Status()), now); derr != nil {
			return derr
		}
		if derr = res.TransitionPayment(patch.Coalesce(payment, res.PaymentStatus()), now); derr != nil {
			return derr
		}

		if derr = uc.ensureFree(ctx, tx.Reads(), res, &id); derr != nil {
			return derr
		}
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
	return translate(err, reservationErrors)
}

// UpdateStatus applies one status transition. Leaving cancelled re-checks
// the room because the dates may have been taken meanwhile.
func (uc *reservationUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	to, err := reservation.ParseStatus(status)
	if err != nil {
		return translate(err, reservationErrors)
	}

	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.load(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		wasActive := res.IsActive()
		if derr = res.TransitionStatus(to, uc.clock.Now()); derr != nil {
			return derr
		}
		if !wasActive {
			if derr = uc.ensureFree(ctx, tx.Reads(), res, &id); derr != nil {
				return derr
			}
		}
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
	return translate(err, reservationErrors)
}

func (uc *reservationUseCaseImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	to, err := reservation.ParsePaymentStatus(status)
	if err != nil {
		return translate(err, reservationErrors)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.load(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		if derr = res.TransitionPayment(to, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
	return translate(err, reservationErrors)
}

func (uc *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	return translate(err, reservationErrors)
}

func (uc *reservationUseCaseImpl) BulkCreate(ctx context.Context, in []ReservationInput) (*BulkResult, error) {
	if len(in) == 0 {
		return nil, ErrEmptyBulk
	}

	result := newBulkResult(len(in))
	for _, item := range in {
		id, err := uc.Create(ctx, item)
		switch {
		case err == nil:
			result.created(id)
		case errs.Is(err, errs.ErrConflict):
			result.skipped(fmt.Sprintf("Room %s not available for dates %s to %s",
				item.RoomID, item.CheckIn.UTC().Format(dateLayout), item.CheckOut.UTC().Format(dateLayout)))
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			result.failed(fmt.Sprintf("Error creating reservation: %s", err.Error()))
		}
	}

	slog.Info("bulk reservation create finished",
		"requested", result.TotalRequested,
		"created", result.TotalCreated,
		"skipped", result.TotalSkipped)
	return result, nil
}

func (uc *reservationUseCaseImpl) Populate(ctx context.Context, in PopulateReservationsInput) (*BulkResult, error) {
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if kind == "" {
		kind = ReservationSampleMixed
	}
	if !IsReservationSampleKind(kind) {
		return nil, ErrUnknownSampleType
	}
	if in.Count < 1 || in.Count > MaxPopulateCount {
		return nil, ErrInvalidPopulateCount
	}

	reads := uc.uow.CommandReads()
	guests, err := reads.Guests(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := reads.BookableRooms(ctx)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 || len(rooms) == 0 {
		return nil, ErrNoSampleData
	}

	now := uc.clock.Now()
	today := clock.Date(now, time.UTC)
	r := seeded(in.Seed, now.UnixNano())
	return uc.BulkCreate(ctx, GenerateReservations(r, kind, in.Count, today, guests, rooms))
}

func (uc *reservationUseCaseImpl) load(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*reservation.Reservation, error) {
	snap, err := reads.ReservationByID(ctx, id)
	if err != nil {
		return nil, missing(err, ErrReservationNotFound)
	}
	return snap.Aggregate()
}

// loadParties checks that the guest exists and returns the booked room.
func (uc *reservationUseCaseImpl) loadParties(ctx context.Context, reads shared.CommandReads, b reservation.Booking) (*shared.RoomSnapshot, error) {
	if _, err := reads.GuestByID(ctx, b.GuestID); err != nil {
		return nil, missing(err, ErrGuestNotFound)
	}
	roomSnap, err := reads.RoomByID(ctx, b.RoomID)
	if err != nil {
		return nil, missing(err, ErrRoomNotFound)
	}
	return roomSnap, nil
}

// ensureFree rejects an active reservation whose stay overlaps another active one.
func (uc *reservationUseCaseImpl) ensureFree(ctx context.Context, reads shared.CommandReads, res *reservation.Reservation, exclude *uuid.UUID) error {
	if !res.IsActive() {
		return nil
	}
	conflict, err := reads.RoomHasConflict(ctx, res.RoomID(), res.Period(), exclude)
	if err != nil {
		return err
	}
	if conflict {
		return ErrRoomUnavailable
	}
	return nil
}
