package converter

import (
	"hotel-management/internal/domain/guest"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/pgconv"
)

func GuestToCreateParams(g *guest.Guest) pgsql.CreateGuestParams {
	return pgsql.CreateGuestParams{
		ID:        g.ID(),
		Name:      g.Name().String(),
		Email:     g.Email().String(),
		Phone:     g.Phone().String(),
		CreatedAt: pgconv.TimeToPgtype(g.CreatedAt()),
	}
}

func GuestToUpdateParams(g *guest.Guest) pgsql.UpdateGuestParams {
	return pgsql.UpdateGuestParams{
		ID:        g.ID(),
		Name:      g.Name().String(),
		Email:     g.Email().String(),
		Phone:     g.Phone().String(),
		UpdatedAt: pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}
