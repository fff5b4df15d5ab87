package guest

import (
	"time"

	"hotel-management/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errs.New("name is required")
	ErrNameTooLong  = errs.New("name exceeds maximum length")
	ErrInvalidEmail = errs.New("email is not a valid address")
	ErrEmailTooLong = errs.New("email exceeds maximum length")
	ErrInvalidPhone = errs.New("phone is not a valid number")
	ErrPhoneTooLong = errs.New("phone exceeds maximum length")
)

type Guest struct {
	id        uuid.UUID
	name      Name
	email     Email
	phone     Phone
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(id uuid.UUID, name, email, phone string, now time.Time) (*Guest, error) {
	n, e, p, err := parseContact(name, email, phone)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Guest{
		id:        id,
		name:      n,
		email:     e,
		phone:     p,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructGuest rebuilds a persisted guest without re-validating it.
func ReconstructGuest(id uuid.UUID, name, email, phone string, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		id:        id,
		name:      Name{value: name},
		email:     Email{value: email},
		phone:     Phone{value: phone},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateContact replaces all contact fields at once.
func (g *Guest) UpdateContact(name, email, phone string, now time.Time) error {
	n, e, p, err := parseContact(name, email, phone)
	if err != nil {
		return err
	}
	g.name, g.email, g.phone = n, e, p
	g.updatedAt = now
	return nil
}

func parseContact(name, email, phone string) (Name, Email, Phone, error) {
	n, err := NewName(name)
	if err != nil {
		return Name{}, Email{}, Phone{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Name{}, Email{}, Phone{}, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return Name{}, Email{}, Phone{}, err
	}
	return n, e, p, nil
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) Name() Name           { return g.name }
func (g *Guest) Email() Email         { return g.email }
func (g *Guest) Phone() Phone         { return g.phone }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }
