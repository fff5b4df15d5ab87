package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/room"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomInput struct {
	RoomNumber         string
	RoomType           string
	PricePerNightCents int64
	Description        string
	IsAvailable        bool
}

func (in RoomInput) attributes() (room.Attributes, error) {
	price, err := money.FromCents(in.PricePerNightCents)
	if err != nil {
		return room.Attributes{}, err
	}
	return room.Attributes{
		Number:        in.RoomNumber,
		Type:          in.RoomType,
		PricePerNight: price,
		Description:   in.Description,
		IsAvailable:   in.IsAvailable,
	}, nil
}

type RoomCommands interface {
	Create(ctx context.Context, in RoomInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in RoomInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkCreate(ctx context.Context, in []RoomInput) (*BulkResult, error)
	PopulateFloor(ctx context.Context, floor, roomsPerFloor int) (*BulkResult, error)
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) Create(ctx context.Context, in RoomInput) (uuid.UUID, error) {
	attrs, err := in.attributes()
	if err != nil {
		return uuid.Nil, translate(err, roomErrors)
	}
	rm, err := room.NewRoom(uuid.Nil, attrs, uc.clock.Now())
	if err != nil {
		return uuid.Nil, translate(err, roomErrors)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Rooms().Create(ctx, tx.DB(), rm)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, translate(err, roomErrors)
	}
	return createdID, nil
}

// Update replaces every editable field. Existing reservations keep their
// totals when the nightly rate changes.
func (uc *roomUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in RoomInput) error {
	attrs, err := in.attributes()
	if err != nil {
		return translate(err, roomErrors)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomByID(ctx, id)
		if derr != nil {
			return derr
		}
		rm := snap.Aggregate()
		if derr = rm.Update(attrs, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
	return translate(err, roomErrors)
}

func (uc *roomUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, tx.DB(), id)
	})
	return translate(err, roomErrors)
}

func (uc *roomUseCaseImpl) BulkCreate(ctx context.Context, in []RoomInput) (*BulkResult, error) {
	if len(in) == 0 {
		return nil, ErrEmptyBulk
	}

	result := newBulkResult(len(in))
	for _, item := range in {
		number := strings.TrimSpace(item.RoomNumber)
		id, err := uc.Create(ctx, item)
		switch {
		case err == nil:
			result.created(id)
		case errs.Is(err, errs.ErrDuplicateKey):
			result.skipped(fmt.Sprintf("Room %s already exists", number))
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			result.failed(fmt.Sprintf("Error creating room %s: %s", number, err.Error()))
		}
	}

	slog.Info("bulk room create finished",
		"requested", result.TotalRequested,
		"created", result.TotalCreated,
		"skipped", result.TotalSkipped)
	return result, nil
}

func (uc *roomUseCaseImpl) PopulateFloor(ctx context.Context, floor, roomsPerFloor int) (*BulkResult, error) {
	if floor < 1 || floor > MaxFloor {
		return nil, ErrInvalidFloor
	}
	if roomsPerFloor < 1 || roomsPerFloor > MaxRoomsPerFloor {
		return nil, ErrInvalidRoomsPerFloor
	}
	return uc.BulkCreate(ctx, GenerateFloorRooms(floor, roomsPerFloor))
}
