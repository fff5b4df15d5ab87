package response

import (
	"time"

	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	GuestID         uuid.UUID `json:"guest_id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	RoomType        string    `json:"room_type"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	Nights          int       `json:"nights"`
	NumberOfGuests  int       `json:"number_of_guests"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	TotalPrice      float64   `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		GuestID:         v.GuestID,
		GuestName:       v.GuestName,
		GuestEmail:      v.GuestEmail,
		RoomID:          v.RoomID,
		RoomNumber:      v.RoomNumber,
		RoomType:        v.RoomType,
		CheckInDate:     v.CheckIn.Format(dateLayout),
		CheckOutDate:    v.CheckOut.Format(dateLayout),
		Nights:          v.Nights(),
		NumberOfGuests:  v.NumberOfGuests,
		SpecialRequests: v.SpecialRequests,
		Status:          v.Status,
		PaymentStatus:   v.PaymentStatus,
		TotalPrice:      centsToDollars(v.TotalPriceCents),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   string                 `json:"next_cursor,omitempty"`
}

func FromReservationViews(views []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	res := &ReservationListResponse{Reservations: make([]*ReservationResponse, len(views))}
	for i, v := range views {
		res.Reservations[i] = FromReservationView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
