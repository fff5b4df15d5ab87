package response

import (
	"time"

	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromGuestView(v *queries.GuestView) *GuestResponse {
	return &GuestResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromGuestViews(views []*queries.GuestView) []*GuestResponse {
	res := make([]*GuestResponse, len(views))
	for i, v := range views {
		res[i] = FromGuestView(v)
	}
	return res
}
