//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-management/internal/domain/guest"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type guestMocks struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	reads *sharedmock.MockCommandReads
	repo  *sharedmock.MockGuestRepository
}

func newGuestMocks(t *testing.T) guestMocks {
	ctrl := gomock.NewController(t)
	m := guestMocks{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		repo:  sharedmock.NewMockGuestRepository(ctrl),
	}
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Guests().Return(m.repo).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx(m.tx)).AnyTimes()
	return m
}

func duplicateEmailErr() error {
	return infra.WrapRepoErr("failed to create guest",
		&pgconn.PgError{Code: "23505", ConstraintName: "guests_email_key"})
}

func TestGuestCommands_Create(t *testing.T) {
	now := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

	t.Run("正常系: ゲストを作成できる", func(t *testing.T) {
		m := newGuestMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, g *guest.Guest) (uuid.UUID, error) {
				assert.Equal(t, "John Smith", g.Name().String())
				assert.Equal(t, now, g.CreatedAt())
				return g.ID(), nil
			})

		id, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
			Create(context.Background(), commands.GuestInput{Name: " John Smith ", Email: "john@example.com", Phone: "+1-555-0100"})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("異常系: 不正な入力は検証エラー", func(t *testing.T) {
		cases := []struct {
			name string
			in   commands.GuestInput
		}{
			{name: "empty name", in: commands.GuestInput{Name: "", Email: "john@example.com", Phone: "+1-555-0100"}},
			{name: "invalid email", in: commands.GuestInput{Name: "John", Email: "not-an-email", Phone: "+1-555-0100"}},
			{name: "invalid phone", in: commands.GuestInput{Name: "John", Email: "john@example.com", Phone: "call me"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m := newGuestMocks(t)
				_, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).Create(context.Background(), tc.in)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			})
		}
	})

	t.Run("異常系: メール重複はDuplicateKey", func(t *testing.T) {
		m := newGuestMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, duplicateEmailErr())

		_, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
			Create(context.Background(), commands.GuestInput{Name: "John", Email: "john@example.com", Phone: "+1-555-0100"})

		assert.True(t, errs.Is(err, commands.ErrDuplicateEmail))
		assert.True(t, errs.Is(err, errs.ErrDuplicateKey))
	})
}

func TestGuestCommands_BulkCreate(t *testing.T) {
	now := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

	t.Run("メール重複1件: 2件作成・1件エラー", func(t *testing.T) {
		m := newGuestMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, g *guest.Guest) (uuid.UUID, error) {
				if g.Email().String() == "taken@example.com" {
					return uuid.Nil, duplicateEmailErr()
				}
				return g.ID(), nil
			}).Times(3)

		in := []commands.GuestInput{
			{Name: "Ann Lee", Email: "ann@example.com", Phone: "+1-555-0101"},
			{Name: "Bob Lee", Email: "taken@example.com", Phone: "+1-555-0102"},
			{Name: "Cid Lee", Email: "cid@example.com", Phone: "+1-555-0103"},
		}
		result, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).BulkCreate(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalRequested)
		assert.Equal(t, 2, result.TotalCreated)
		assert.Equal(t, 1, result.TotalSkipped)
		assert.Len(t, result.Created, 2)
		assert.Equal(t, []string{"Guest with email taken@example.com already exists"}, result.Errors)
	})

	t.Run("検証エラーはスキップ数に含めない", func(t *testing.T) {
		m := newGuestMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		in := []commands.GuestInput{
			{Name: "Ann Lee", Email: "ann@example.com", Phone: "+1-555-0101"},
			{Name: "", Email: "nobody@example.com", Phone: "+1-555-0102"},
		}
		result, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).BulkCreate(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCreated)
		assert.Equal(t, 0, result.TotalSkipped)
		assert.Equal(t, []string{"Error creating guest : name is required"}, result.Errors)
	})

	t.Run("空の入力は検証エラー", func(t *testing.T) {
		m := newGuestMocks(t)
		_, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).BulkCreate(context.Background(), nil)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestGuestCommands_UpdateAndDelete(t *testing.T) {
	now := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()
	snap := &shared.GuestSnapshot{
		ID: id, Name: "John Smith", Email: "john@example.com", Phone: "+1-555-0100",
		CreatedAt: now.AddDate(0, -1, 0), UpdatedAt: now.AddDate(0, -1, 0),
	}

	t.Run("更新: 連絡先を置き換える", func(t *testing.T) {
		m := newGuestMocks(t)
		m.reads.EXPECT().GuestByID(gomock.Any(), id).Return(snap, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, g *guest.Guest) error {
				assert.Equal(t, "john.smith@example.com", g.Email().String())
				assert.Equal(t, now, g.UpdatedAt())
				assert.Equal(t, snap.CreatedAt, g.CreatedAt())
				return nil
			})

		err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
			Update(context.Background(), id, commands.GuestInput{Name: "John Smith", Email: "john.smith@example.com", Phone: "+1-555-0100"})
		require.NoError(t, err)
	})

	t.Run("更新: 存在しないゲストはNotFound", func(t *testing.T) {
		m := newGuestMocks(t)
		m.reads.EXPECT().GuestByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound))

		err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
			Update(context.Background(), id, commands.GuestInput{Name: "John", Email: "john@example.com", Phone: "+1-555-0100"})
		assert.True(t, errs.Is(err, commands.ErrGuestNotFound))
	})

	t.Run("削除: 予約が残っていればReferenced", func(t *testing.T) {
		m := newGuestMocks(t)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("failed to delete guest",
				&pgconn.PgError{Code: "23503", ConstraintName: "reservations_guest_id_fkey"}))

		err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).Delete(context.Background(), id)

		assert.True(t, errs.Is(err, commands.ErrGuestReferenced))
		assert.True(t, errs.Is(err, errs.ErrReferenced))
	})
}

func TestGuestCommands_Populate(t *testing.T) {
	now := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

	t.Run("件数の範囲外は検証エラー", func(t *testing.T) {
		for _, count := range []int{0, 101} {
			m := newGuestMocks(t)
			_, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
				Populate(context.Background(), commands.PopulateGuestsInput{Count: count})
			assert.True(t, errs.Is(err, commands.ErrInvalidPopulateCount), "count=%d", count)
		}
	})

	t.Run("同じシードなら同じゲストを生成する", func(t *testing.T) {
		var emails [2][]string
		for i := range emails {
			m := newGuestMocks(t)
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, g *guest.Guest) (uuid.UUID, error) {
					emails[i] = append(emails[i], g.Email().String())
					return g.ID(), nil
				}).Times(5)

			result, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
				Populate(context.Background(), commands.PopulateGuestsInput{Count: 5, Seed: ptr.Of(uint64(7))})
			require.NoError(t, err)
			assert.Equal(t, 5, result.TotalCreated)
		}
		assert.Equal(t, emails[0], emails[1])
	})

	t.Run("キュレーション済みの一覧を登録する", func(t *testing.T) {
		m := newGuestMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(10)

		result, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
			Populate(context.Background(), commands.PopulateGuestsInput{Kind: "Premium"})
		require.NoError(t, err)
		assert.Equal(t, 10, result.TotalCreated)
	})

	t.Run("未知の種別は検証エラー", func(t *testing.T) {
		m := newGuestMocks(t)
		_, err := commands.NewGuestUseCase(m.uow, clock.NewMockClock(now)).
			Populate(context.Background(), commands.PopulateGuestsInput{Kind: "vip", Count: 3})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
