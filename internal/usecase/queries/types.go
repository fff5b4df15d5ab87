package queries

import (
	"hotel-management/internal/pkg/errs"
)

var (
	ErrGuestNotFound       = errs.NewKind("guest not found", errs.ErrNotFound)
	ErrRoomNotFound        = errs.NewKind("room not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrInvalidCursor       = errs.NewKind("invalid cursor", errs.ErrValidation)
	ErrInvalidFilter       = errs.NewKind("invalid filter", errs.ErrValidation)
	ErrInvalidDateRange    = errs.NewKind("check-out date must be after check-in date", errs.ErrValidation)
)

var (
	ErrInvalidReportRange = errs.NewKind("start date must not be after end date", errs.ErrValidation)
	ErrInvalidYear        = errs.NewKind("year is out of range", errs.ErrValidation)
)
