package request

import (
	"hotel-management/internal/domain/money"
	"hotel-management/internal/usecase/commands"
)

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" binding:"required,max=50"`
	RoomType      string  `json:"room_type" binding:"required,max=50"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0,lte=1000000"`
	Description   string  `json:"description" binding:"max=500"`
	// nil means available
	IsAvailable *bool `json:"is_available"`
}

type UpdateRoomRequest struct {
	RoomNumber    string  `json:"room_number" binding:"required,max=50"`
	RoomType      string  `json:"room_type" binding:"required,max=50"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0,lte=1000000"`
	Description   string  `json:"description" binding:"max=500"`
	IsAvailable   bool    `json:"is_available"`
}

func (r CreateRoomRequest) ToInput() commands.RoomInput {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return commands.RoomInput{
		RoomNumber:         r.RoomNumber,
		RoomType:           r.RoomType,
		PricePerNightCents: dollarsToCents(r.PricePerNight),
		Description:        r.Description,
		IsAvailable:        available,
	}
}

func (r UpdateRoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{
		RoomNumber:         r.RoomNumber,
		RoomType:           r.RoomType,
		PricePerNightCents: dollarsToCents(r.PricePerNight),
		Description:        r.Description,
		IsAvailable:        r.IsAvailable,
	}
}

type BulkCreateRoomsRequest struct {
	Rooms []CreateRoomRequest `json:"rooms" binding:"required,min=1,dive"`
}

func (r BulkCreateRoomsRequest) ToInputs() []commands.RoomInput {
	in := make([]commands.RoomInput, len(r.Rooms))
	for i, rm := range r.Rooms {
		in[i] = rm.ToInput()
	}
	return in
}

type PopulateFloorQuery struct {
	Floor         int `form:"floor,default=1"`
	RoomsPerFloor int `form:"rooms_per_floor,default=10"`
}

// dollarsToCents relies on binding having bounded the amount.
func dollarsToCents(d float64) int64 {
	m, _ := money.FromDollars(d)
	return m.Cents()
}
