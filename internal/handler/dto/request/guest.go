package request

import (
	"hotel-management/internal/usecase/commands"
)

type CreateGuestRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Phone string `json:"phone" binding:"required,phone"`
}

// UpdateGuestRequest replaces every field.
type UpdateGuestRequest = CreateGuestRequest

func (r CreateGuestRequest) ToInput() commands.GuestInput {
	return commands.GuestInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

type BulkCreateGuestsRequest struct {
	Guests []CreateGuestRequest `json:"guests" binding:"required,min=1,dive"`
}

func (r BulkCreateGuestsRequest) ToInputs() []commands.GuestInput {
	in := make([]commands.GuestInput, len(r.Guests))
	for i, g := range r.Guests {
		in[i] = g.ToInput()
	}
	return in
}

type PopulateGuestsQuery struct {
	Count int     `form:"count,default=10"`
	Kind  string  `form:"kind"`
	Seed  *uint64 `form:"seed"`
}

func (q PopulateGuestsQuery) ToInput() commands.PopulateGuestsInput {
	return commands.PopulateGuestsInput{Kind: q.Kind, Count: q.Count, Seed: q.Seed}
}
