package response

import (
	"time"

	"hotel-management/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	Description   string    `json:"description"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:            v.ID,
		RoomNumber:    v.RoomNumber,
		RoomType:      v.RoomType,
		PricePerNight: centsToDollars(v.PricePerNightCents),
		Description:   v.Description,
		IsAvailable:   v.IsAvailable,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomView(v)
	}
	return res
}

type RoomAvailabilityResponse struct {
	RoomID        uuid.UUID `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	Description   string    `json:"description"`
	IsAvailable   bool      `json:"is_available"`
}

type AvailabilityListResponse struct {
	CheckInDate    string                      `json:"check_in_date"`
	CheckOutDate   string                      `json:"check_out_date"`
	TotalRooms     int                         `json:"total_rooms"`
	AvailableRooms int                         `json:"available_rooms"`
	Rooms          []*RoomAvailabilityResponse `json:"rooms"`
}

func FromAvailability(checkIn, checkOut time.Time, rooms []*queries.RoomAvailability) *AvailabilityListResponse {
	res := &AvailabilityListResponse{
		CheckInDate:  checkIn.Format(dateLayout),
		CheckOutDate: checkOut.Format(dateLayout),
		TotalRooms:   len(rooms),
		Rooms:        make([]*RoomAvailabilityResponse, len(rooms)),
	}
	for i, r := range rooms {
		if r.IsAvailable {
			res.AvailableRooms++
		}
		res.Rooms[i] = &RoomAvailabilityResponse{
			RoomID:        r.RoomID,
			RoomNumber:    r.RoomNumber,
			RoomType:      r.RoomType,
			PricePerNight: centsToDollars(r.PricePerNightCents),
			Description:   r.Description,
			IsAvailable:   r.IsAvailable,
		}
	}
	return res
}

type RoomAvailabilityCheckResponse struct {
	RoomID       uuid.UUID `json:"room_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	IsAvailable  bool      `json:"is_available"`
}

func FromAvailabilityCheck(c *queries.RoomAvailabilityCheck) *RoomAvailabilityCheckResponse {
	return &RoomAvailabilityCheckResponse{
		RoomID:       c.RoomID,
		CheckInDate:  c.CheckIn.Format(dateLayout),
		CheckOutDate: c.CheckOut.Format(dateLayout),
		IsAvailable:  c.IsAvailable,
	}
}
