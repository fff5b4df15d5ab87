package converter

import (
	"hotel-management/internal/domain/room"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) pgsql.CreateRoomParams {
	return pgsql.CreateRoomParams{
		ID:                 r.ID(),
		RoomNumber:         r.Number(),
		RoomType:           r.Type(),
		PricePerNightCents: r.PricePerNight().Cents(),
		Description:        pgconv.OptionalStringToPgtype(r.Description()),
		IsAvailable:        r.IsAvailable(),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RoomToUpdateParams(r *room.Room) pgsql.UpdateRoomParams {
	return pgsql.UpdateRoomParams{
		ID:                 r.ID(),
		RoomNumber:         r.Number(),
		RoomType:           r.Type(),
		PricePerNightCents: r.PricePerNight().Cents(),
		Description:        pgconv.OptionalStringToPgtype(r.Description()),
		IsAvailable:        r.IsAvailable(),
		UpdatedAt:          pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
