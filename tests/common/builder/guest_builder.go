//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management/internal/domain/guest"
	reqdto "hotel-management/internal/handler/dto/request"
	"hotel-management/internal/usecase/queries"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type GuestBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:    uuid.New(),
		Name:  "John Smith",
		Email: "john.smith@email.com",
		Phone: "+1-555-0101",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) WithEmail(email string) *GuestBuilder {
	b.Email = email
	return b
}

func (b *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return guest.NewGuest(b.ID, b.Name, b.Email, b.Phone, fixedNow)
}

func (b *GuestBuilder) BuildRequest() reqdto.CreateGuestRequest {
	return reqdto.CreateGuestRequest{Name: b.Name, Email: b.Email, Phone: b.Phone}
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	return &queries.GuestView{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func (b *GuestBuilder) BuildSnapshot() *shared.GuestSnapshot {
	return &shared.GuestSnapshot{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}
