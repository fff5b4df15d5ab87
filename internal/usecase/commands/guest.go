package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hotel-management/internal/domain/guest"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestInput struct {
	Name  string
	Email string
	Phone string
}

type PopulateGuestsInput struct {
	// Kind is random (default) or one of the curated lists.
	Kind  string
	Count int
	Seed  *uint64
}

type GuestCommands interface {
	Create(ctx context.Context, in GuestInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in GuestInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkCreate(ctx context.Context, in []GuestInput) (*BulkResult, error)
	Populate(ctx context.Context, in PopulateGuestsInput) (*BulkResult, error)
}

type guestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGuestUseCase(uow shared.UnitOfWork, clk clock.Clock) GuestCommands {
	return &guestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *guestUseCaseImpl) Create(ctx context.Context, in GuestInput) (uuid.UUID, error) {
	g, err := guest.NewGuest(uuid.Nil, in.Name, in.Email, in.Phone, uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err, guestErrors)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Guests().Create(ctx, tx.DB(), g)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, translate(err, guestErrors)
	}
	return createdID, nil
}

func (uc *guestUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in GuestInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().GuestByID(ctx, id)
		if derr != nil {
			return derr
		}
		g := snap.Aggregate()
		if derr = g.UpdateContact(in.Name, in.Email, in.Phone, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Guests().Update(ctx, tx.DB(), g)
	})
	return translate(err, guestErrors)
}

func (uc *guestUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Guests().Delete(ctx, tx.DB(), id)
	})
	return translate(err, guestErrors)
}

func (uc *guestUseCaseImpl) BulkCreate(ctx context.Context, in []GuestInput) (*BulkResult, error) {
	if len(in) == 0 {
		return nil, ErrEmptyBulk
	}

	result := newBulkResult(len(in))
	for _, item := range in {
		id, err := uc.Create(ctx, item)
		switch {
		case err == nil:
			result.created(id)
		case errs.Is(err, errs.ErrDuplicateKey):
			result.skipped(fmt.Sprintf("Guest with email %s already exists", strings.TrimSpace(item.Email)))
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			result.failed(fmt.Sprintf("Error creating guest %s: %s", item.Name, err.Error()))
		}
	}

	slog.Info("bulk guest create finished",
		"requested", result.TotalRequested,
		"created", result.TotalCreated,
		"skipped", result.TotalSkipped)
	return result, nil
}

func (uc *guestUseCaseImpl) Populate(ctx context.Context, in PopulateGuestsInput) (*BulkResult, error) {
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if kind == "" || kind == GuestSampleRandom {
		if in.Count < 1 || in.Count > MaxPopulateCount {
			return nil, ErrInvalidPopulateCount
		}
		r := seeded(in.Seed, uc.clock.Now().UnixNano())
		return uc.BulkCreate(ctx, GenerateGuests(r, in.Count))
	}

	curated, ok := CuratedGuests(kind)
	if !ok {
		return nil, errs.Mark(errs.Newf("invalid type: %s. Valid options are: random, all, premium, business, leisure", in.Kind), errs.ErrValidation)
	}
	return uc.BulkCreate(ctx, curated)
}
