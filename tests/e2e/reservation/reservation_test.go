//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/repository"
	"hotel-management/internal/pkg/errs"
	"hotel-management/tests/common/builder"
	"hotel-management/tests/common/dbtest"
	"hotel-management/tests/common/httptest"
	"hotel-management/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

const reservationsURL = "/api/reservations"

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ReservationSuite) book(guestID, roomID uuid.UUID, checkIn, checkOut string) (int, gjson.Result) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{
		"guest_id":         guestID,
		"room_id":          roomID,
		"check_in_date":    checkIn,
		"check_out_date":   checkOut,
		"number_of_guests": 2,
	})
	return w.Code, gjson.ParseBytes(w.Body.Bytes())
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: total is priced per night and joined fields are returned", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)

		code, body := s.book(guestID, roomID, "2025-01-01", "2025-01-04")
		require.Equal(t, http.StatusCreated, code, body.Raw)

		s.Equal(3, int(body.Get("nights").Int()))
		s.InDelta(300.0, body.Get("total_price").Float(), 0.001)
		s.Equal("pending", body.Get("status").String())
		s.Equal("pending", body.Get("payment_status").String())
		s.Equal("John Smith", body.Get("guest_name").String())
		s.Equal("101", body.Get("room_number").String())
	})

	s.Run("Error case: overlapping stay on the same room is rejected", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)

		code, _ := s.book(guestID, roomID, "2025-01-03", "2025-01-05")
		require.Equal(t, http.StatusCreated, code)

		code, body := s.book(guestID, roomID, "2025-01-04", "2025-01-06")
		s.Equal(http.StatusConflict, code, body.Raw)
		s.Contains(body.Get("error.message").String(), "not available")

		code, body = s.book(guestID, roomID, "2025-01-05", "2025-01-07")
		s.Equal(http.StatusCreated, code, "adjacent stays must not conflict: %s", body.Raw)
	})

	s.Run("Normal case: cancelled stays free the dates", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			GuestID: guestID, RoomID: roomID, CheckIn: day(1, 3), CheckOut: day(1, 5),
			Status: "cancelled", TotalPriceCents: 20000,
		})

		code, body := s.book(guestID, roomID, "2025-01-03", "2025-01-05")
		s.Equal(http.StatusCreated, code, body.Raw)
	})

	s.Run("Error case: unknown guest is 404", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)

		code, body := s.book(uuid.New(), roomID, "2025-01-03", "2025-01-05")
		s.Equal(http.StatusNotFound, code, body.Raw)
	})

	s.Run("Error case: check-out before check-in is 400", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)

		code, body := s.book(guestID, roomID, "2025-01-05", "2025-01-03")
		s.Equal(http.StatusBadRequest, code, body.Raw)
	})
}

func (s *ReservationSuite) TestDoubleBookingGuard() {
	s.Run("Normal case: concurrent bookings of the same dates admit exactly one", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		payload := map[string]any{
			"guest_id":         guestID,
			"room_id":          roomID,
			"check_in_date":    "2025-03-01",
			"check_out_date":   "2025-03-04",
			"number_of_guests": 2,
		}

		const attempts = 6
		codes := make([]int, attempts)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, payload).Code
			}()
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		s.Equal(1, created, "codes: %v", codes)
		s.Equal(attempts-1, conflicts, "codes: %v", codes)

		var rows int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM reservations WHERE room_id = $1", roomID).Scan(&rows)
		require.NoError(t, err)
		s.Equal(1, rows)
	})

	s.Run("Error case: storage rejects an overlapping active row written past the availability check", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			GuestID: guestID, RoomID: roomID, CheckIn: day(1, 3), CheckOut: day(1, 5),
			Status: "confirmed", TotalPriceCents: 20000,
		})

		overlapping, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.GuestID = guestID
				b.RoomID = roomID
			}).
			WithDates(day(1, 4), day(1, 6)).
			BuildDomain()
		require.NoError(t, err)

		repo := repository.NewReservationRepository(pgsql.New())
		_, err = repo.Create(context.Background(), s.DB, overlapping)

		var repoErr infra.RepositoryError
		require.True(t, errs.As(err, &repoErr), "expected a repository error, got %v", err)
		s.Equal(infra.KindConflict, repoErr.Kind)
		s.Equal("reservations_no_overlap", repoErr.Constraint)
	})

	s.Run("Normal case: a cancelled row does not hold the dates in storage", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			GuestID: guestID, RoomID: roomID, CheckIn: day(1, 3), CheckOut: day(1, 5),
			Status: "cancelled", TotalPriceCents: 20000,
		})

		res, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.GuestID = guestID
				b.RoomID = roomID
			}).
			WithDates(day(1, 3), day(1, 5)).
			BuildDomain()
		require.NoError(t, err)

		_, err = repository.NewReservationRepository(pgsql.New()).Create(context.Background(), s.DB, res)
		s.NoError(err)
	})
}

func (s *ReservationSuite) TestStatusLifecycle() {
	s.Run("Normal case: pending -> confirmed -> checked_in -> checked_out, then terminal", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		code, created := s.book(guestID, roomID, "2025-01-01", "2025-01-03")
		require.Equal(t, http.StatusCreated, code)
		url := fmt.Sprintf("%s/%s/status", reservationsURL, created.Get("id").String())

		for _, st := range []string{"confirmed", "checked_in", "checked_out"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]string{"status": st})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			s.Equal(st, gjson.GetBytes(w.Body.Bytes(), "status").String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]string{"status": "pending"})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "checked_out")
	})

	s.Run("Error case: reinstating a cancelled stay whose dates were taken", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		cancelledID := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			GuestID: guestID, RoomID: roomID, CheckIn: day(1, 3), CheckOut: day(1, 5),
			Status: "cancelled", TotalPriceCents: 20000,
		})
		code, _ := s.book(guestID, roomID, "2025-01-04", "2025-01-06")
		require.Equal(t, http.StatusCreated, code)

		url := fmt.Sprintf("%s/%s/status", reservationsURL, cancelledID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]string{"status": "pending"})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Normal case: payment failed can be retried", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		id := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			GuestID: guestID, RoomID: roomID, CheckIn: day(1, 3), CheckOut: day(1, 5),
			PaymentStatus: "failed", TotalPriceCents: 20000,
		})

		url := fmt.Sprintf("%s/%s/payment-status", reservationsURL, id)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]string{"payment_status": "paid"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		s.Equal("paid", gjson.GetBytes(w.Body.Bytes(), "payment_status").String())
	})
}

func (s *ReservationSuite) TestListAndAvailability() {
	s.Run("Normal case: filters by room and reports per-room availability", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		room1 := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)
		room2 := dbtest.CreateTestRoom(t, s.DB, "102", "Standard Single", 10000)
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{
			GuestID: guestID, RoomID: room1, CheckIn: day(1, 3), CheckOut: day(1, 5), TotalPriceCents: 20000,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?room_id="+room2.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		s.Equal(int64(0), gjson.GetBytes(w.Body.Bytes(), "reservations.#").Int())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/check-availability?check_in=2025-01-04&check_out=2025-01-06", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := gjson.ParseBytes(w.Body.Bytes())
		s.Equal(int64(2), body.Get("total_rooms").Int())
		s.Equal(int64(1), body.Get("available_rooms").Int())
		s.False(body.Get(`rooms.#(room_number=="101").is_available`).Bool())
		s.True(body.Get(`rooms.#(room_number=="102").is_available`).Bool())
	})
}

func (s *ReservationSuite) TestBulkCreate() {
	s.Run("Normal case: a conflicting item is skipped, the rest are created", func() {
		t := s.T()
		guestID := dbtest.CreateTestGuest(t, s.DB, "John Smith", "john@example.com")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", "Standard Single", 10000)

		item := func(in, out string) map[string]any {
			return map[string]any{
				"guest_id": guestID, "room_id": roomID,
				"check_in_date": in, "check_out_date": out, "number_of_guests": 1,
			}
		}
		reqBody := map[string]any{"reservations": []any{
			item("2025-01-01", "2025-01-03"),
			item("2025-01-02", "2025-01-04"),
			item("2025-01-03", "2025-01-05"),
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/bulk", reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := gjson.ParseBytes(w.Body.Bytes())
		s.Equal("Created 2 of 3 reservations", body.Get("message").String())
		s.Equal(int64(2), body.Get("created.#").Int())
		s.Equal(int64(1), body.Get("errors.#").Int())
	})
}
