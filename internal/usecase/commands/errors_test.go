//go:build unit

package commands_test

import (
	"testing"

	"hotel-management/internal/pkg/errs"
	"hotel-management/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsAreDistinct(t *testing.T) {
	groups := []struct {
		name      string
		kind      error
		sentinels []error
	}{
		{
			name:      "not found",
			kind:      errs.ErrNotFound,
			sentinels: []error{commands.ErrGuestNotFound, commands.ErrRoomNotFound, commands.ErrReservationNotFound},
		},
		{
			name:      "duplicate key",
			kind:      errs.ErrDuplicateKey,
			sentinels: []error{commands.ErrDuplicateEmail, commands.ErrDuplicateRoomNumber},
		},
		{
			name:      "referenced",
			kind:      errs.ErrReferenced,
			sentinels: []error{commands.ErrGuestReferenced, commands.ErrRoomReferenced},
		},
		{
			name: "validation",
			kind: errs.ErrValidation,
			sentinels: []error{
				commands.ErrEmptyBulk,
				commands.ErrNoSampleData,
				commands.ErrInvalidPopulateCount,
				commands.ErrInvalidFloor,
				commands.ErrInvalidRoomsPerFloor,
				commands.ErrUnknownSampleType,
			},
		},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			for i, a := range g.sentinels {
				assert.True(t, errs.Is(a, g.kind), "%v should carry its kind", a)
				for j, b := range g.sentinels {
					if i != j {
						assert.False(t, errs.Is(a, b), "%v must not match %v", a, b)
					}
				}
			}
		})
	}
}
