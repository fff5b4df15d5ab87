package request

import (
	"time"

	"hotel-management/internal/usecase/commands"
	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD value as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

type CreateReservationRequest struct {
	GuestID         uuid.UUID `json:"guest_id" binding:"required"`
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckInDate     string    `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate    string    `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	NumberOfGuests  int       `json:"number_of_guests" binding:"required,min=1,max=10"`
	SpecialRequests string    `json:"special_requests" binding:"max=1000"`
}

// ToInput relies on binding having checked the date layout.
func (r CreateReservationRequest) ToInput() commands.ReservationInput {
	checkIn, _ := ParseDate(r.CheckInDate)
	checkOut, _ := ParseDate(r.CheckOutDate)
	return commands.ReservationInput{
		GuestID:         r.GuestID,
		RoomID:          r.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
	}
}

type UpdateReservationRequest struct {
	CreateReservationRequest
	Status        *string `json:"status" binding:"omitempty,reservation_status"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,payment_status"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		ReservationInput: r.CreateReservationRequest.ToInput(),
		Status:           r.Status,
		PaymentStatus:    r.PaymentStatus,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,reservation_status"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,payment_status"`
}

type BulkCreateReservationsRequest struct {
	Reservations []CreateReservationRequest `json:"reservations" binding:"required,min=1,dive"`
}

func (r BulkCreateReservationsRequest) ToInputs() []commands.ReservationInput {
	in := make([]commands.ReservationInput, len(r.Reservations))
	for i, res := range r.Reservations {
		in[i] = res.ToInput()
	}
	return in
}

type PopulateReservationsQuery struct {
	Count int     `form:"count,default=20"`
	Type  string  `form:"type"`
	Seed  *uint64 `form:"seed"`
}

func (q PopulateReservationsQuery) ToInput() commands.PopulateReservationsInput {
	return commands.PopulateReservationsInput{Kind: q.Type, Count: q.Count, Seed: q.Seed}
}

type ListReservationsQuery struct {
	RoomID        string `form:"room_id" binding:"omitempty,uuid"`
	GuestID       string `form:"guest_id" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,reservation_status"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,payment_status"`
	CheckInFrom   string `form:"check_in_from" binding:"omitempty,datetime=2006-01-02"`
	CheckInTo     string `form:"check_in_to" binding:"omitempty,datetime=2006-01-02"`
	Limit         int    `form:"limit"`
	After         string `form:"after"`
}

// Filters relies on binding having checked every non-empty value.
func (q ListReservationsQuery) Filters() queries.ReservationFilters {
	var f queries.ReservationFilters
	if q.RoomID != "" {
		id := uuid.MustParse(q.RoomID)
		f.RoomID = &id
	}
	if q.GuestID != "" {
		id := uuid.MustParse(q.GuestID)
		f.GuestID = &id
	}
	if q.Status != "" {
		f.Status = &q.Status
	}
	if q.PaymentStatus != "" {
		f.PaymentStatus = &q.PaymentStatus
	}
	if q.CheckInFrom != "" {
		d, _ := ParseDate(q.CheckInFrom)
		f.CheckInFrom = &d
	}
	if q.CheckInTo != "" {
		d, _ := ParseDate(q.CheckInTo)
		f.CheckInTo = &d
	}
	return f
}

func (q ListReservationsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" binding:"required,datetime=2006-01-02"`
}

func (q AvailabilityQuery) Dates() (time.Time, time.Time) {
	checkIn, _ := ParseDate(q.CheckIn)
	checkOut, _ := ParseDate(q.CheckOut)
	return checkIn, checkOut
}
