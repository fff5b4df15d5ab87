//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/pkg/clock"
	"hotel-management/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, reservation.PaymentPending, actual.PaymentStatus())
		assert.Equal(t, 3, actual.Period().Nights())
		assert.True(t, actual.IsActive())
	})

	t.Run("total is nightly rate times nights", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			WithDates(day(2025, 1, 1), day(2025, 1, 4)).
			WithNightlyRateCents(10000).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(30000), actual.TotalPrice().Cents())
	})

	t.Run("booking validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one night stay",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates(day(2025, 1, 1), day(2025, 1, 2)) },
			},
			{
				name:   "same day check-out",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates(day(2025, 1, 1), day(2025, 1, 1)) },
				errIs:  reservation.ErrInvalidStayPeriod,
			},
			{
				name:   "check-out before check-in",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates(day(2025, 1, 5), day(2025, 1, 1)) },
				errIs:  reservation.ErrInvalidStayPeriod,
			},
			{
				name:   "minimum guests",
				mutate: func(b *builder.ReservationBuilder) { b.NumberOfGuests = reservation.MinGuests },
			},
			{
				name:   "maximum guests",
				mutate: func(b *builder.ReservationBuilder) { b.NumberOfGuests = reservation.MaxGuests },
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.NumberOfGuests = 0 },
				errIs:  reservation.ErrInvalidGuestCount,
			},
			{
				name:   "too many guests",
				mutate: func(b *builder.ReservationBuilder) { b.NumberOfGuests = reservation.MaxGuests + 1 },
				errIs:  reservation.ErrInvalidGuestCount,
			},
			{
				name: "too long special requests",
				mutate: func(b *builder.ReservationBuilder) {
					b.SpecialRequests = strings.Repeat("r", reservation.MaxSpecialRequestsLength+1)
				},
				errIs: reservation.ErrSpecialRequestsTooLong,
			},
		})
	})

	t.Run("unavailable room is rejected", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		period, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
		require.NoError(t, err)
		guests, _ := reservation.NewGuestCount(2)

		_, err = reservation.NewReservation(newServices(), reservation.Booking{
			GuestID: b.GuestID, RoomID: b.RoomID, Period: period, Guests: guests,
		}, reservation.RoomSpec{ID: b.RoomID, PricePerNight: money.MustCents(100), IsAvailable: false})
		assert.ErrorIs(t, err, reservation.ErrRoomUnavailable)
	})
}

func TestStayPeriod(t *testing.T) {
	mustPeriod := func(in, out time.Time) reservation.StayPeriod {
		p, err := reservation.NewStayPeriod(in, out)
		require.NoError(t, err)
		return p
	}
	base := mustPeriod(day(2025, 1, 3), day(2025, 1, 5))

	tests := []struct {
		name  string
		other reservation.StayPeriod
		want  bool
	}{
		{"identical", mustPeriod(day(2025, 1, 3), day(2025, 1, 5)), true},
		{"partial overlap", mustPeriod(day(2025, 1, 4), day(2025, 1, 6)), true},
		{"nested", mustPeriod(day(2025, 1, 1), day(2025, 1, 10)), true},
		{"adjacent after", mustPeriod(day(2025, 1, 5), day(2025, 1, 7)), false},
		{"adjacent before", mustPeriod(day(2025, 1, 1), day(2025, 1, 3)), false},
		{"disjoint", mustPeriod(day(2025, 2, 1), day(2025, 2, 2)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}

	t.Run("times are truncated to UTC days", func(t *testing.T) {
		p := mustPeriod(time.Date(2025, 1, 3, 15, 0, 0, 0, time.UTC), time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC))
		assert.True(t, p.Equal(base))
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("occupies check-in night but not check-out night", func(t *testing.T) {
		assert.True(t, base.Occupies(day(2025, 1, 3)))
		assert.True(t, base.Occupies(day(2025, 1, 4)))
		assert.False(t, base.Occupies(day(2025, 1, 5)))
	})

	t.Run("nights beyond the time.Duration range", func(t *testing.T) {
		p := mustPeriod(day(1700, 1, 1), day(2025, 12, 31))
		assert.Equal(t, 119068, p.Nights())
	})
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", day(2025, 1, 1), day(2025, 1, 1).Add(23 * time.Hour), 0},
		{"one night", day(2025, 1, 1), day(2025, 1, 2), 1},
		{"leap year", day(2024, 1, 1), day(2025, 1, 1), 366},
		{"reversed", day(2025, 1, 5), day(2025, 1, 1), -4},
		{"non-UTC input", time.Date(2025, 1, 1, 23, 0, 0, 0, time.FixedZone("JST", 9*3600)), day(2025, 1, 3), 2},
		{"centuries", day(1700, 1, 1), day(2025, 12, 31), 119068},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.DaysBetween(tt.a, tt.b))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to reservation.Status
		allowed  bool
	}{
		{reservation.StatusPending, reservation.StatusConfirmed, true},
		{reservation.StatusPending, reservation.StatusCancelled, true},
		{reservation.StatusPending, reservation.StatusCheckedIn, false},
		{reservation.StatusConfirmed, reservation.StatusCheckedIn, true},
		{reservation.StatusCheckedIn, reservation.StatusCheckedOut, true},
		{reservation.StatusCheckedIn, reservation.StatusCancelled, false},
		{reservation.StatusCancelled, reservation.StatusPending, true},
		{reservation.StatusCancelled, reservation.StatusConfirmed, true},
		{reservation.StatusCheckedOut, reservation.StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			r := reconstruct(tt.from, reservation.PaymentPending)
			err := r.TransitionStatus(tt.to, time.Now())
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, r.Status())
				return
			}
			assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
			assert.Equal(t, tt.from, r.Status())
		})
	}

	t.Run("checked_out is terminal", func(t *testing.T) {
		assert.True(t, reservation.StatusCheckedOut.IsTerminal())
		assert.Empty(t, reservation.StatusCheckedOut.AllowedTransitions())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		r := reconstruct(reservation.StatusCheckedOut, reservation.PaymentPaid)
		before := r.UpdatedAt()
		require.NoError(t, r.TransitionStatus(reservation.StatusCheckedOut, time.Now()))
		assert.Equal(t, before, r.UpdatedAt())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := reservation.ParseStatus("archived")
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)

		st, err := reservation.ParseStatus(" Checked_In ")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedIn, st)
	})

	t.Run("cancelled releases the room", func(t *testing.T) {
		assert.False(t, reservation.StatusCancelled.IsActive())
		assert.True(t, reservation.StatusCheckedOut.IsActive())
	})
}

func TestPaymentTransitions(t *testing.T) {
	tests := []struct {
		from, to reservation.PaymentStatus
		allowed  bool
	}{
		{reservation.PaymentPending, reservation.PaymentPaid, true},
		{reservation.PaymentPending, reservation.PaymentFailed, true},
		{reservation.PaymentPending, reservation.PaymentRefunded, false},
		{reservation.PaymentPaid, reservation.PaymentRefunded, true},
		{reservation.PaymentPaid, reservation.PaymentPending, false},
		{reservation.PaymentFailed, reservation.PaymentPending, true},
		{reservation.PaymentFailed, reservation.PaymentPaid, true},
		{reservation.PaymentRefunded, reservation.PaymentPaid, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			r := reconstruct(reservation.StatusConfirmed, tt.from)
			err := r.TransitionPayment(tt.to, time.Now())
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, r.PaymentStatus())
				return
			}
			var te *reservation.TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, string(tt.from), te.From)
			assert.Equal(t, string(tt.to), te.To)
		})
	}

	t.Run("refunded is terminal", func(t *testing.T) {
		assert.True(t, reservation.PaymentRefunded.IsTerminal())
	})
}

func TestRevise(t *testing.T) {
	b := builder.NewReservationBuilder()
	rate := money.MustCents(10000)

	newBooking := func(roomID uuid.UUID, in, out time.Time, guests int) reservation.Booking {
		period, err := reservation.NewStayPeriod(in, out)
		require.NoError(t, err)
		count, err := reservation.NewGuestCount(guests)
		require.NoError(t, err)
		return reservation.Booking{GuestID: b.GuestID, RoomID: roomID, Period: period, Guests: count}
	}

	t.Run("guest count change keeps the total", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.Revise(newServices(), newBooking(b.RoomID, b.CheckIn, b.CheckOut, 4),
			reservation.RoomSpec{ID: b.RoomID, PricePerNight: money.MustCents(99999), IsAvailable: true})
		require.NoError(t, err)
		assert.Equal(t, int64(30000), r.TotalPrice().Cents())
		assert.Equal(t, 4, r.Guests().Int())
	})

	t.Run("new dates reprice", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.Revise(newServices(), newBooking(b.RoomID, b.CheckIn, b.CheckIn.AddDate(0, 0, 5), 2),
			reservation.RoomSpec{ID: b.RoomID, PricePerNight: rate, IsAvailable: true})
		require.NoError(t, err)
		assert.Equal(t, int64(50000), r.TotalPrice().Cents())
	})

	t.Run("moving to an unavailable room fails", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)
		other := uuid.New()

		err = r.Revise(newServices(), newBooking(other, b.CheckIn, b.CheckOut, 2),
			reservation.RoomSpec{ID: other, PricePerNight: rate, IsAvailable: false})
		assert.ErrorIs(t, err, reservation.ErrRoomUnavailable)
		assert.Equal(t, b.RoomID, r.RoomID())
	})
}

func newServices() *reservation.Services {
	return &reservation.Services{
		Clock:           clock.NewMockClock(day(2025, 1, 1)),
		PriceCalculator: reservation.NewNightlyPriceCalculator(),
	}
}

func reconstruct(status reservation.Status, payment reservation.PaymentStatus) *reservation.Reservation {
	period, _ := reservation.NewStayPeriod(day(2025, 1, 1), day(2025, 1, 3))
	guests, _ := reservation.NewGuestCount(1)
	created := day(2024, 12, 1)
	return reservation.ReconstructReservation(uuid.New(), reservation.Booking{
		GuestID: uuid.New(), RoomID: uuid.New(), Period: period, Guests: guests,
	}, status, payment, money.MustCents(20000), created, created)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
