//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-management/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	errGuestMissing := errs.NewKind("guest missing", errs.ErrNotFound)

	t.Run("マーク元のメッセージを保持する", func(t *testing.T) {
		err := errs.Mark(errors.New("no rows"), errGuestMissing)
		assert.Equal(t, "no rows", err.Error())
		assert.True(t, errs.Is(err, errGuestMissing))
	})

	t.Run("マーク先の種別を引き継ぐ", func(t *testing.T) {
		err := errs.Mark(errors.New("no rows"), errGuestMissing)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("ラップ後も判定できる", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("bad"), errs.ErrValidation), "create guest")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("nilはマーク自身を返す", func(t *testing.T) {
		assert.Equal(t, errGuestMissing, errs.Mark(nil, errGuestMissing))
	})
}

func TestWithCause(t *testing.T) {
	errDuplicate := errs.NewKind("email already exists", errs.ErrDuplicateKey)
	cause := errors.New("duplicate key value violates unique constraint")

	t.Run("番兵のメッセージを返す", func(t *testing.T) {
		err := errs.WithCause(errDuplicate, cause)
		assert.Equal(t, "email already exists", err.Error())
	})

	t.Run("番兵と種別の両方で判定できる", func(t *testing.T) {
		err := errs.WithCause(errDuplicate, cause)
		assert.True(t, errs.Is(err, errDuplicate))
		assert.True(t, errs.Is(err, errs.ErrDuplicateKey))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("原因がnilなら番兵そのもの", func(t *testing.T) {
		assert.Equal(t, errDuplicate, errs.WithCause(errDuplicate, nil))
	})
}

func TestNewKind(t *testing.T) {
	errGuestMissing := errs.NewKind("guest missing", errs.ErrNotFound)
	errRoomMissing := errs.NewKind("room missing", errs.ErrNotFound)

	t.Run("種別で判定できる", func(t *testing.T) {
		assert.True(t, errs.Is(errGuestMissing, errs.ErrNotFound))
		assert.False(t, errs.Is(errGuestMissing, errs.ErrConflict))
	})

	t.Run("同じ種別の番兵同士は区別される", func(t *testing.T) {
		assert.False(t, errs.Is(errGuestMissing, errRoomMissing))
		assert.False(t, errs.Is(errRoomMissing, errGuestMissing))
	})

	t.Run("原因付きでも番兵を区別できる", func(t *testing.T) {
		err := errs.Wrap(errs.WithCause(errRoomMissing, errors.New("no rows")), "load room")
		assert.True(t, errs.Is(err, errRoomMissing))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errGuestMissing))
		assert.Equal(t, "load room: room missing", err.Error())
	})

	t.Run("マークしても元の番兵と区別される", func(t *testing.T) {
		err := errs.Mark(errors.New("bad cursor"), errGuestMissing)
		assert.True(t, errs.Is(err, errGuestMissing))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errRoomMissing))
	})
}
