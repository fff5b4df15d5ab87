//go:build unit || e2e

package builder

import (
	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/room"
	reqdto "hotel-management/internal/handler/dto/request"
	"hotel-management/internal/usecase/queries"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID          uuid.UUID
	Number      string
	Type        string
	PriceCents  int64
	Description string
	IsAvailable bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		Number:      "101",
		Type:        "Standard Single",
		PriceCents:  8900,
		Description: "Comfortable room with a single bed",
		IsAvailable: true,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	b.PriceCents = cents
	return b
}

func (b *RoomBuilder) WithDescription(description string) *RoomBuilder {
	b.Description = description
	return b
}

func (b *RoomBuilder) Unavailable() *RoomBuilder {
	b.IsAvailable = false
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	price, err := money.FromCents(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(b.ID, room.Attributes{
		Number:        b.Number,
		Type:          b.Type,
		PricePerNight: price,
		Description:   b.Description,
		IsAvailable:   b.IsAvailable,
	}, fixedNow)
}

func (b *RoomBuilder) BuildRequest() reqdto.CreateRoomRequest {
	available := b.IsAvailable
	return reqdto.CreateRoomRequest{
		RoomNumber:    b.Number,
		RoomType:      b.Type,
		PricePerNight: float64(b.PriceCents) / 100,
		Description:   b.Description,
		IsAvailable:   &available,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 b.ID,
		RoomNumber:         b.Number,
		RoomType:           b.Type,
		PricePerNightCents: b.PriceCents,
		Description:        b.Description,
		IsAvailable:        b.IsAvailable,
		CreatedAt:          fixedNow,
		UpdatedAt:          fixedNow,
	}
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 b.ID,
		Number:             b.Number,
		Type:               b.Type,
		PricePerNightCents: b.PriceCents,
		Description:        b.Description,
		IsAvailable:        b.IsAvailable,
		CreatedAt:          fixedNow,
		UpdatedAt:          fixedNow,
	}
}
