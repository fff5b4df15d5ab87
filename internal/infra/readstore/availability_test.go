//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/readstore"
	readstoremock "hotel-management/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityReadStore_ListAvailability(t *testing.T) {
	ctx := context.Background()
	period, err := reservation.NewStayPeriod(date(time.January, 3), date(time.January, 5))
	require.NoError(t, err)

	rows := []pgsql.ListRoomAvailabilityRow{
		{Rooms: pgsql.Rooms{ID: uuid.New(), RoomNumber: "101", RoomType: "Standard", PricePerNightCents: 10000, IsAvailable: true}, Available: true},
		{Rooms: pgsql.Rooms{ID: uuid.New(), RoomNumber: "102", RoomType: "Deluxe", PricePerNightCents: 15000,
			Description: pgtype.Text{String: "Sea view", Valid: true}, IsAvailable: true}, Available: false},
	}

	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockAvailabilityReadQueries(ctrl)
	m.EXPECT().ListRoomAvailability(ctx, gomock.Nil(), pgDate(date(time.January, 3)), pgDate(date(time.January, 5))).Return(rows, nil)

	got, err := readstore.NewAvailabilityReadStore(m, nil).ListAvailability(ctx, period)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsAvailable)
	assert.Empty(t, got[0].Description)
	assert.False(t, got[1].IsAvailable)
	assert.Equal(t, "Sea view", got[1].Description)
	assert.Equal(t, int64(15000), got[1].PricePerNightCents)
}

func TestAvailabilityReadStore_HasConflictExcluding(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	exclude := uuid.New()
	period, err := reservation.NewStayPeriod(date(time.January, 4), date(time.January, 6))
	require.NoError(t, err)

	tests := []struct {
		name     string
		exclude  *uuid.UUID
		wantArg  pgtype.UUID
		conflict bool
		dbErr    error
	}{
		{name: "除外なし", exclude: nil, wantArg: pgtype.UUID{}, conflict: true},
		{name: "自身を除外", exclude: &exclude, wantArg: pgtype.UUID{Bytes: exclude, Valid: true}, conflict: false},
		{name: "DBエラー", exclude: nil, wantArg: pgtype.UUID{}, dbErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockAvailabilityReadQueries(ctrl)
			m.EXPECT().RoomHasConflict(ctx, gomock.Nil(), pgsql.RoomHasConflictParams{
				CheckIn:   pgDate(date(time.January, 4)),
				CheckOut:  pgDate(date(time.January, 6)),
				RoomID:    roomID,
				ExcludeID: tt.wantArg,
			}).Return(tt.conflict, tt.dbErr)

			got, err := readstore.NewAvailabilityReadStore(m, nil).HasConflictExcluding(ctx, roomID, period, tt.exclude)

			if tt.dbErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.conflict, got)
		})
	}
}
