//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/pkg/ptr"
	"hotel-management/internal/usecase/commands"
	"hotel-management/internal/usecase/shared"
	sharedmock "hotel-management/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockReservationRepository
	clock    *clock.MockClock
	cmds     commands.ReservationCommands

	guestID uuid.UUID
	roomID  uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.repo = sharedmock.NewMockReservationRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewReservationUseCase(s.uow, s.clock)

	s.guestID = uuid.New()
	s.roomID = uuid.New()

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.repo).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func jan(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func runTx(tx shared.Tx) func(context.Context, func(context.Context, shared.Tx) error) error {
	return func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, tx)
	}
}

func (s *ReservationCommandsTestSuite) expectSerializable() {
	s.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx(s.tx))
}

func (s *ReservationCommandsTestSuite) expectParties(pricePerNightCents int64, flagged bool) {
	s.reads.EXPECT().GuestByID(gomock.Any(), s.guestID).
		Return(&shared.GuestSnapshot{ID: s.guestID, Name: "John Smith", Email: "john@example.com", Phone: "+1-555-0100"}, nil)
	s.reads.EXPECT().RoomByID(gomock.Any(), s.roomID).
		Return(&shared.RoomSnapshot{ID: s.roomID, Number: "101", Type: "Standard", PricePerNightCents: pricePerNightCents, IsAvailable: flagged}, nil)
}

func (s *ReservationCommandsTestSuite) input(in, out time.Time) commands.ReservationInput {
	return commands.ReservationInput{
		GuestID:        s.guestID,
		RoomID:         s.roomID,
		CheckIn:        in,
		CheckOut:       out,
		NumberOfGuests: 2,
	}
}

func (s *ReservationCommandsTestSuite) stored(id uuid.UUID, status, payment string, totalCents int64) *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:              id,
		GuestID:         s.guestID,
		RoomID:          s.roomID,
		CheckIn:         jan(3),
		CheckOut:        jan(6),
		NumberOfGuests:  2,
		Status:          status,
		PaymentStatus:   payment,
		TotalPriceCents: totalCents,
		CreatedAt:       jan(1),
		UpdatedAt:       jan(1),
	}
}

// ================================================================================
// Create
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreate_PricesNightsTimesRate() {
	s.expectSerializable()
	s.expectParties(10000, true)
	s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Nil()).Return(false, nil)

	var saved *reservation.Reservation
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgsql.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
			saved = res
			return res.ID(), nil
		})

	id, err := s.cmds.Create(s.ctx, s.input(jan(1), jan(4)))

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal(saved.ID(), id)
	s.Equal(int64(30000), saved.TotalPrice().Cents())
	s.Equal(reservation.StatusPending, saved.Status())
	s.Equal(reservation.PaymentPending, saved.PaymentStatus())
}

func (s *ReservationCommandsTestSuite) TestCreate_ValidationFailsBeforeTransaction() {
	cases := []struct {
		name string
		in   commands.ReservationInput
	}{
		{name: "zero nights", in: s.input(jan(3), jan(3))},
		{name: "inverted dates", in: s.input(jan(5), jan(3))},
		{name: "no guests", in: func() commands.ReservationInput { in := s.input(jan(3), jan(5)); in.NumberOfGuests = 0; return in }()},
		{name: "too many guests", in: func() commands.ReservationInput { in := s.input(jan(3), jan(5)); in.NumberOfGuests = 11; return in }()},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.cmds.Create(s.ctx, tc.in)
			s.Error(err)
			s.True(errs.Is(err, errs.ErrValidation))
		})
	}
}

func (s *ReservationCommandsTestSuite) TestCreate_DoubleBooking() {
	existing, err := reservation.NewStayPeriod(jan(3), jan(5))
	s.Require().NoError(err)

	cases := []struct {
		name         string
		in, out      time.Time
		wantConflict bool
	}{
		{name: "overlapping stay is rejected", in: jan(4), out: jan(6), wantConflict: true},
		{name: "back-to-back stay is accepted", in: jan(5), out: jan(7), wantConflict: false},
		{name: "stay ending on existing check-in is accepted", in: jan(1), out: jan(3), wantConflict: false},
		{name: "nested stay is rejected", in: jan(3), out: jan(4), wantConflict: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectSerializable()
			s.expectParties(10000, true)
			s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Nil()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, p reservation.StayPeriod, _ *uuid.UUID) (bool, error) {
					return p.Overlaps(existing), nil
				})
			if !tc.wantConflict {
				s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			}

			_, err := s.cmds.Create(s.ctx, s.input(tc.in, tc.out))

			if tc.wantConflict {
				s.True(errs.Is(err, commands.ErrRoomUnavailable))
				s.True(errs.Is(err, errs.ErrConflict))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestCreate_RoomFlaggedOff() {
	s.expectSerializable()
	s.expectParties(10000, false)

	_, err := s.cmds.Create(s.ctx, s.input(jan(3), jan(5)))

	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *ReservationCommandsTestSuite) TestCreate_MissingParties() {
	s.Run("guest not found", func() {
		s.expectSerializable()
		s.reads.EXPECT().GuestByID(gomock.Any(), s.guestID).
			Return(nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(s.ctx, s.input(jan(3), jan(5)))

		s.True(errs.Is(err, commands.ErrGuestNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("room not found", func() {
		s.expectSerializable()
		s.reads.EXPECT().GuestByID(gomock.Any(), s.guestID).Return(&shared.GuestSnapshot{ID: s.guestID}, nil)
		s.reads.EXPECT().RoomByID(gomock.Any(), s.roomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := s.cmds.Create(s.ctx, s.input(jan(3), jan(5)))

		s.True(errs.Is(err, commands.ErrRoomNotFound))
		s.False(errs.Is(err, commands.ErrReservationNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestCreate_ExclusionViolationIsConflict() {
	s.expectSerializable()
	s.expectParties(10000, true)
	s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Nil()).Return(false, nil)
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("failed to create reservation",
			&pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}))

	_, err := s.cmds.Create(s.ctx, s.input(jan(3), jan(5)))

	s.True(errs.Is(err, commands.ErrRoomUnavailable))
	s.Equal(commands.ErrRoomUnavailable.Error(), err.Error())
}

// ================================================================================
// Update
// ================================================================================

func (s *ReservationCommandsTestSuite) TestUpdate_ExcludesItselfFromConflictCheck() {
	id := uuid.New()
	s.expectSerializable()
	s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(s.stored(id, "confirmed", "pending", 30000), nil)
	s.expectParties(10000, true)
	s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Eq(&id)).Return(false, nil)

	var saved *reservation.Reservation
	s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgsql.DBTX, res *reservation.Reservation) error {
			saved = res
			return nil
		})

	in := commands.UpdateReservationInput{ReservationInput: s.input(jan(3), jan(7))}
	err := s.cmds.Update(s.ctx, id, in)

	s.Require().NoError(err)
	s.Equal(4, saved.Period().Nights())
	s.Equal(int64(40000), saved.TotalPrice().Cents())
}

func (s *ReservationCommandsTestSuite) TestUpdate_KeepsTotalWhenRoomAndDatesUnchanged() {
	id := uuid.New()
	s.expectSerializable()
	s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(s.stored(id, "pending", "pending", 30000), nil)
	// nightly rate changed since booking
	s.expectParties(15000, true)
	s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Eq(&id)).Return(false, nil)

	var saved *reservation.Reservation
	s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgsql.DBTX, res *reservation.Reservation) error {
			saved = res
			return nil
		})

	in := commands.UpdateReservationInput{
		ReservationInput: s.input(jan(3), jan(6)),
		Status:           ptr.Of("confirmed"),
		PaymentStatus:    ptr.Of("paid"),
	}
	in.NumberOfGuests = 3
	err := s.cmds.Update(s.ctx, id, in)

	s.Require().NoError(err)
	s.Equal(int64(30000), saved.TotalPrice().Cents())
	s.Equal(3, saved.Guests().Int())
	s.Equal(reservation.StatusConfirmed, saved.Status())
	s.Equal(reservation.PaymentPaid, saved.PaymentStatus())
}

func (s *ReservationCommandsTestSuite) TestUpdate_RejectsDisallowedTransition() {
	id := uuid.New()
	s.expectSerializable()
	s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(s.stored(id, "checked_out", "paid", 30000), nil)
	s.expectParties(10000, true)

	in := commands.UpdateReservationInput{
		ReservationInput: s.input(jan(3), jan(6)),
		Status:           ptr.Of("pending"),
	}
	err := s.cmds.Update(s.ctx, id, in)

	s.True(errs.Is(err, errs.ErrInvalidTransition))
	var te *reservation.TransitionError
	s.Require().True(errs.As(err, &te))
	s.Equal("checked_out", te.From)
	s.Equal("pending", te.To)
}

func (s *ReservationCommandsTestSuite) TestUpdate_UnknownStatusIsValidation() {
	in := commands.UpdateReservationInput{
		ReservationInput: s.input(jan(3), jan(6)),
		Status:           ptr.Of("archived"),
	}
	err := s.cmds.Update(s.ctx, uuid.New(), in)

	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *ReservationCommandsTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.expectSerializable()
	s.reads.EXPECT().ReservationByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

	err := s.cmds.Update(s.ctx, id, commands.UpdateReservationInput{ReservationInput: s.input(jan(3), jan(6))})

	s.True(errs.Is(err, commands.ErrReservationNotFound))
}

// ================================================================================
// UpdateStatus / UpdatePaymentStatus
// ================================================================================

func (s *ReservationCommandsTestSuite) TestUpdateStatus() {
	cases := []struct {
		name           string
		from, to       string
		wantTransition bool
		recheck        bool
	}{
		{name: "pending -> confirmed", from: "pending", to: "confirmed"},
		{name: "confirmed -> checked_in", from: "confirmed", to: "checked_in"},
		{name: "checked_in -> checked_out", from: "checked_in", to: "checked_out"},
		{name: "cancelled -> pending re-checks the room", from: "cancelled", to: "pending", recheck: true},
		{name: "same state is a no-op", from: "confirmed", to: "confirmed"},
		{name: "checked_out is terminal", from: "checked_out", to: "pending", wantTransition: true},
		{name: "pending cannot skip to checked_in", from: "pending", to: "checked_in", wantTransition: true},
		{name: "checked_in cannot be cancelled", from: "checked_in", to: "cancelled", wantTransition: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			id := uuid.New()
			s.expectSerializable()
			s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(s.stored(id, tc.from, "pending", 30000), nil)
			if tc.recheck {
				s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Eq(&id)).Return(false, nil)
			}
			if !tc.wantTransition {
				s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			err := s.cmds.UpdateStatus(s.ctx, id, tc.to)

			if tc.wantTransition {
				s.True(errs.Is(err, errs.ErrInvalidTransition))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestUpdateStatus_ReactivationConflict() {
	id := uuid.New()
	s.expectSerializable()
	s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(s.stored(id, "cancelled", "pending", 30000), nil)
	s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Eq(&id)).Return(true, nil)

	err := s.cmds.UpdateStatus(s.ctx, id, "confirmed")

	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *ReservationCommandsTestSuite) TestUpdatePaymentStatus() {
	cases := []struct {
		name           string
		from, to       string
		wantTransition bool
	}{
		{name: "pending -> paid", from: "pending", to: "paid"},
		{name: "pending -> failed", from: "pending", to: "failed"},
		{name: "failed -> pending", from: "failed", to: "pending"},
		{name: "paid -> refunded", from: "paid", to: "refunded"},
		{name: "refunded is terminal", from: "refunded", to: "paid", wantTransition: true},
		{name: "paid cannot fail", from: "paid", to: "failed", wantTransition: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			id := uuid.New()
			s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx(s.tx))
			s.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(s.stored(id, "confirmed", tc.from, 30000), nil)
			if !tc.wantTransition {
				s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			err := s.cmds.UpdatePaymentStatus(s.ctx, id, tc.to)

			if tc.wantTransition {
				s.True(errs.Is(err, errs.ErrInvalidTransition))
				return
			}
			s.NoError(err)
		})
	}
}

// ================================================================================
// Delete / BulkCreate / Populate
// ================================================================================

func (s *ReservationCommandsTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx(s.tx))
	s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
		Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

	err := s.cmds.Delete(s.ctx, id)

	s.True(errs.Is(err, commands.ErrReservationNotFound))
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *ReservationCommandsTestSuite) TestBulkCreate_SkipsConflicts() {
	existing, err := reservation.NewStayPeriod(jan(3), jan(5))
	s.Require().NoError(err)

	items := []commands.ReservationInput{
		s.input(jan(1), jan(3)),
		s.input(jan(4), jan(6)),
		s.input(jan(5), jan(7)),
	}
	s.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx(s.tx)).Times(3)
	s.reads.EXPECT().GuestByID(gomock.Any(), s.guestID).Return(&shared.GuestSnapshot{ID: s.guestID}, nil).Times(3)
	s.reads.EXPECT().RoomByID(gomock.Any(), s.roomID).
		Return(&shared.RoomSnapshot{ID: s.roomID, Number: "101", PricePerNightCents: 10000, IsAvailable: true}, nil).Times(3)
	s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p reservation.StayPeriod, _ *uuid.UUID) (bool, error) {
			return p.Overlaps(existing), nil
		}).Times(3)
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(2)

	result, err := s.cmds.BulkCreate(s.ctx, items)

	s.Require().NoError(err)
	s.Equal(3, result.TotalRequested)
	s.Equal(2, result.TotalCreated)
	s.Equal(1, result.TotalSkipped)
	s.Len(result.Created, 2)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "not available for dates 2025-01-04 to 2025-01-06")
}

func (s *ReservationCommandsTestSuite) TestBulkCreate_RecordsValidationFailures() {
	items := []commands.ReservationInput{s.input(jan(5), jan(5))}

	result, err := s.cmds.BulkCreate(s.ctx, items)

	s.Require().NoError(err)
	s.Equal(0, result.TotalCreated)
	s.Equal(0, result.TotalSkipped)
	s.Equal([]string{"Error creating reservation: check-out date must be after check-in date"}, result.Errors)
}

func (s *ReservationCommandsTestSuite) TestBulkCreate_Empty() {
	_, err := s.cmds.BulkCreate(s.ctx, nil)

	s.True(errs.Is(err, commands.ErrEmptyBulk))
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *ReservationCommandsTestSuite) TestPopulate_RequiresGuestsAndRooms() {
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().Guests(gomock.Any()).Return([]shared.GuestSnapshot{{ID: s.guestID}}, nil)
	s.reads.EXPECT().BookableRooms(gomock.Any()).Return(nil, nil)

	_, err := s.cmds.Populate(s.ctx, commands.PopulateReservationsInput{Count: 5})

	s.True(errs.Is(err, commands.ErrNoSampleData))
}

func (s *ReservationCommandsTestSuite) TestPopulate_ValidatesInput() {
	cases := []struct {
		name string
		in   commands.PopulateReservationsInput
		want error
	}{
		{name: "count zero", in: commands.PopulateReservationsInput{Count: 0}, want: commands.ErrInvalidPopulateCount},
		{name: "count over limit", in: commands.PopulateReservationsInput{Count: 101}, want: commands.ErrInvalidPopulateCount},
		{name: "unknown kind", in: commands.PopulateReservationsInput{Kind: "group", Count: 5}, want: commands.ErrUnknownSampleType},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.cmds.Populate(s.ctx, tc.in)
			s.True(errs.Is(err, tc.want))
		})
	}
}

func (s *ReservationCommandsTestSuite) TestPopulate_SameSeedSameBatch() {
	seed := uint64(42)
	var runs [2][]time.Time
	for i := range runs {
		s.uow.EXPECT().CommandReads().Return(s.reads)
		s.reads.EXPECT().Guests(gomock.Any()).Return([]shared.GuestSnapshot{{ID: s.guestID, Email: "a@gmail.com"}}, nil)
		s.reads.EXPECT().BookableRooms(gomock.Any()).
			Return([]shared.RoomSnapshot{{ID: s.roomID, Number: "101", Type: "Double", PricePerNightCents: 15000, IsAvailable: true}}, nil)
		s.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx(s.tx)).Times(3)
		s.reads.EXPECT().GuestByID(gomock.Any(), s.guestID).Return(&shared.GuestSnapshot{ID: s.guestID}, nil).Times(3)
		s.reads.EXPECT().RoomByID(gomock.Any(), s.roomID).
			Return(&shared.RoomSnapshot{ID: s.roomID, PricePerNightCents: 15000, IsAvailable: true}, nil).Times(3)
		s.reads.EXPECT().RoomHasConflict(gomock.Any(), s.roomID, gomock.Any(), gomock.Nil()).Return(false, nil).Times(3)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
				runs[i] = append(runs[i], res.Period().CheckIn())
				return res.ID(), nil
			}).Times(3)

		result, err := s.cmds.Populate(s.ctx, commands.PopulateReservationsInput{Kind: "Vacation", Count: 3, Seed: &seed})
		s.Require().NoError(err)
		s.Equal(3, result.TotalCreated)
	}

	s.Equal(runs[0], runs[1])
}
