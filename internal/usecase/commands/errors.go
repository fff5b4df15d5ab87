package commands

import (
	"fmt"

	"hotel-management/internal/domain/guest"
	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/domain/room"
	"hotel-management/internal/infra"
	"hotel-management/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGuestNotFound       = errs.NewKind("guest not found", errs.ErrNotFound)
	ErrRoomNotFound        = errs.NewKind("room not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)

	ErrRoomUnavailable     = errs.NewKind("room is not available for the selected dates", errs.ErrConflict)
	ErrDuplicateEmail      = errs.NewKind("a guest with this email already exists", errs.ErrDuplicateKey)
	ErrDuplicateRoomNumber = errs.NewKind("a room with this number already exists", errs.ErrDuplicateKey)
	ErrGuestReferenced     = errs.NewKind("guest has reservations and cannot be deleted", errs.ErrReferenced)
	ErrRoomReferenced      = errs.NewKind("room has reservations and cannot be deleted", errs.ErrReferenced)

	ErrEmptyBulk            = errs.NewKind("at least one item is required", errs.ErrValidation)
	ErrNoSampleData         = errs.NewKind("No guests or available rooms found in the database", errs.ErrValidation)
	ErrInvalidPopulateCount = errs.NewKind(fmt.Sprintf("count must be between 1 and %d", MaxPopulateCount), errs.ErrValidation)
	ErrInvalidFloor         = errs.NewKind(fmt.Sprintf("floor must be between 1 and %d", MaxFloor), errs.ErrValidation)
	ErrInvalidRoomsPerFloor = errs.NewKind(fmt.Sprintf("rooms per floor must be between 1 and %d", MaxRoomsPerFloor), errs.ErrValidation)
	ErrUnknownSampleType    = errs.NewKind("unknown reservation sample type", errs.ErrValidation)
)

const (
	constraintGuestEmail = "guests_email_key"
	constraintRoomNumber = "rooms_room_number_key"
	constraintGuestFK    = "reservations_guest_id_fkey"
	constraintRoomFK     = "reservations_room_id_fkey"
)

// BulkResult reports a best-effort batch. A failed item never aborts the rest.
type BulkResult struct {
	Created        []uuid.UUID
	TotalRequested int
	TotalCreated   int
	TotalSkipped   int
	Errors         []string
}

func newBulkResult(requested int) *BulkResult {
	return &BulkResult{
		Created:        make([]uuid.UUID, 0, requested),
		TotalRequested: requested,
		Errors:         []string{},
	}
}

func (r *BulkResult) created(id uuid.UUID) {
	r.Created = append(r.Created, id)
	r.TotalCreated++
}

func (r *BulkResult) skipped(msg string) {
	r.TotalSkipped++
	r.Errors = append(r.Errors, msg)
}

func (r *BulkResult) failed(msg string) {
	r.Errors = append(r.Errors, msg)
}

var domainValidationErrors = []error{
	guest.ErrEmptyName,
	guest.ErrNameTooLong,
	guest.ErrInvalidEmail,
	guest.ErrEmailTooLong,
	guest.ErrInvalidPhone,
	guest.ErrPhoneTooLong,
	room.ErrEmptyNumber,
	room.ErrNumberTooLong,
	room.ErrEmptyType,
	room.ErrTypeTooLong,
	room.ErrNonPositivePrice,
	room.ErrDescriptionTooLong,
	reservation.ErrInvalidStayPeriod,
	reservation.ErrInvalidGuestCount,
	reservation.ErrSpecialRequestsTooLong,
	reservation.ErrInvalidStatus,
	reservation.ErrInvalidPaymentStatus,
	money.ErrNegativeAmount,
	money.ErrAmountTooLarge,
}

// notFoundFor picks the sentinel used when a lookup of that entity misses.
type notFoundFor struct {
	entity     error
	referenced error
}

var (
	guestErrors       = notFoundFor{entity: ErrGuestNotFound, referenced: ErrGuestReferenced}
	roomErrors        = notFoundFor{entity: ErrRoomNotFound, referenced: ErrRoomReferenced}
	reservationErrors = notFoundFor{entity: ErrReservationNotFound}
)

// translate attaches an error kind to err. Storage errors are replaced by the
// matching sentinel so clients never see driver text. It runs outside the unit
// of work so the retry loop still sees the raw driver error.
func translate(err error, nf notFoundFor) error {
	if err == nil {
		return nil
	}
	if hasKind(err) {
		return err
	}

	var transition *reservation.TransitionError
	if errs.As(err, &transition) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	if errs.Is(err, reservation.ErrRoomUnavailable) {
		return errs.Mark(err, errs.ErrConflict)
	}
	for _, target := range domainValidationErrors {
		if errs.Is(err, target) {
			return errs.Mark(err, errs.ErrValidation)
		}
	}

	var repoErr infra.RepositoryError
	if !errs.As(err, &repoErr) {
		return err
	}
	switch repoErr.Kind {
	case infra.KindNotFound:
		return errs.WithCause(nf.entity, err)
	case infra.KindDuplicateKey:
		switch repoErr.Constraint {
		case constraintGuestEmail:
			return errs.WithCause(ErrDuplicateEmail, err)
		case constraintRoomNumber:
			return errs.WithCause(ErrDuplicateRoomNumber, err)
		}
		return errs.Mark(err, errs.ErrDuplicateKey)
	case infra.KindConflict:
		return errs.WithCause(ErrRoomUnavailable, err)
	case infra.KindForeignKeyViolated:
		switch repoErr.Constraint {
		case constraintGuestFK:
			if nf.referenced != nil {
				return errs.WithCause(nf.referenced, err)
			}
			return errs.WithCause(ErrGuestNotFound, err)
		case constraintRoomFK:
			if nf.referenced != nil {
				return errs.WithCause(nf.referenced, err)
			}
			return errs.WithCause(ErrRoomNotFound, err)
		}
		return errs.Mark(err, errs.ErrReferenced)
	}
	return err
}

func hasKind(err error) bool {
	for _, kind := range []error{
		errs.ErrNotFound,
		errs.ErrValidation,
		errs.ErrConflict,
		errs.ErrInvalidTransition,
		errs.ErrDuplicateKey,
		errs.ErrReferenced,
	} {
		if errs.Is(err, kind) {
			return true
		}
	}
	return false
}

// missing turns a storage miss on a referenced entity into its sentinel so
// the outer translate does not attribute it to the entity being written.
func missing(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithCause(sentinel, err)
	}
	return err
}
