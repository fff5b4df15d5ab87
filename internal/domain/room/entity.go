package room

import (
	"strings"
	"time"
	"unicode/utf8"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNumberLength      = 50
	MaxTypeLength        = 50
	MaxDescriptionLength = 500
)

var (
	ErrEmptyNumber        = errs.New("room number is required")
	ErrNumberTooLong      = errs.New("room number exceeds maximum length")
	ErrEmptyType          = errs.New("room type is required")
	ErrTypeTooLong        = errs.New("room type exceeds maximum length")
	ErrNonPositivePrice   = errs.New("price per night must be greater than zero")
	ErrDescriptionTooLong = errs.New("description exceeds maximum length")
)

// Attributes are the editable fields of a room.
type Attributes struct {
	Number        string
	Type          string
	PricePerNight money.Money
	Description   string
	IsAvailable   bool
}

func (a Attributes) normalize() (Attributes, error) {
	a.Number = strings.TrimSpace(a.Number)
	a.Type = strings.TrimSpace(a.Type)
	a.Description = strings.TrimSpace(a.Description)

	switch {
	case a.Number == "":
		return a, ErrEmptyNumber
	case utf8.RuneCountInString(a.Number) > MaxNumberLength:
		return a, ErrNumberTooLong
	case a.Type == "":
		return a, ErrEmptyType
	case utf8.RuneCountInString(a.Type) > MaxTypeLength:
		return a, ErrTypeTooLong
	case a.PricePerNight.Cents() <= 0:
		return a, ErrNonPositivePrice
	case utf8.RuneCountInString(a.Description) > MaxDescriptionLength:
		return a, ErrDescriptionTooLong
	}
	return a, nil
}

type Room struct {
	id        uuid.UUID
	attrs     Attributes
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(id uuid.UUID, attrs Attributes, now time.Time) (*Room, error) {
	a, err := attrs.normalize()
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Room{id: id, attrs: a, createdAt: now, updatedAt: now}, nil
}

func ReconstructRoom(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Room {
	return &Room{id: id, attrs: attrs, createdAt: createdAt, updatedAt: updatedAt}
}

func (r *Room) Update(attrs Attributes, now time.Time) error {
	a, err := attrs.normalize()
	if err != nil {
		return err
	}
	r.attrs = a
	r.updatedAt = now
	return nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Number() string             { return r.attrs.Number }
func (r *Room) Type() string               { return r.attrs.Type }
func (r *Room) PricePerNight() money.Money { return r.attrs.PricePerNight }
func (r *Room) Description() string        { return r.attrs.Description }
func (r *Room) IsAvailable() bool          { return r.attrs.IsAvailable }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
