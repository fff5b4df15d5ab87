//go:build unit

package guest_test

import (
	"strings"
	"testing"
	"time"

	"hotel-management/internal/domain/guest"
	"hotel-management/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GuestBuilder)
	errIs  error
}

func TestGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "John Smith", actual.Name().String())
		assert.Equal(t, "john.smith@email.com", actual.Email().String())
		assert.Equal(t, "+1-555-0101", actual.Phone().String())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("nil id gets a fresh one", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) { b.ID = uuid.Nil }).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "surrounding spaces are trimmed",
				mutate: func(b *builder.GuestBuilder) { b.Name = "  Jane Doe  " },
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.GuestBuilder) { b.Name = strings.Repeat("a", guest.MaxNameLength) },
			},
			{
				name:   "too long name",
				mutate: func(b *builder.GuestBuilder) { b.Name = strings.Repeat("a", guest.MaxNameLength+1) },
				errIs:  guest.ErrNameTooLong,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.GuestBuilder) { b.Name = "   " },
				errIs:  guest.ErrEmptyName,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "subdomain address",
				mutate: func(b *builder.GuestBuilder) { b.WithEmail("a.b@mail.example.co.uk") },
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.GuestBuilder) { b.WithEmail("john.smith.email.com") },
				errIs:  guest.ErrInvalidEmail,
			},
			{
				name:   "display name form is rejected",
				mutate: func(b *builder.GuestBuilder) { b.WithEmail("John <john@example.com>") },
				errIs:  guest.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.GuestBuilder) { b.WithEmail("") },
				errIs:  guest.ErrInvalidEmail,
			},
			{
				name: "too long email",
				mutate: func(b *builder.GuestBuilder) {
					b.WithEmail(strings.Repeat("a", guest.MaxEmailLength) + "@example.com")
				},
				errIs: guest.ErrEmailTooLong,
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "punctuated number",
				mutate: func(b *builder.GuestBuilder) { b.Phone = "(555) 010.1234" },
			},
			{
				name:   "three digits is enough",
				mutate: func(b *builder.GuestBuilder) { b.Phone = "911" },
			},
			{
				name:   "two digits",
				mutate: func(b *builder.GuestBuilder) { b.Phone = "+1-2" },
				errIs:  guest.ErrInvalidPhone,
			},
			{
				name:   "plus sign not leading",
				mutate: func(b *builder.GuestBuilder) { b.Phone = "555+0101" },
				errIs:  guest.ErrInvalidPhone,
			},
			{
				name:   "letters",
				mutate: func(b *builder.GuestBuilder) { b.Phone = "555-CALL-NOW" },
				errIs:  guest.ErrInvalidPhone,
			},
			{
				name:   "too long phone",
				mutate: func(b *builder.GuestBuilder) { b.Phone = strings.Repeat("1", guest.MaxPhoneLength+1) },
				errIs:  guest.ErrPhoneTooLong,
			},
		})
	})
}

func TestGuest_UpdateContact(t *testing.T) {
	g, err := builder.NewGuestBuilder().BuildDomain()
	require.NoError(t, err)
	later := g.CreatedAt().Add(time.Hour)

	t.Run("invalid input leaves the guest untouched", func(t *testing.T) {
		err := g.UpdateContact("Jane Doe", "not-an-email", "+1-555-0102", later)
		assert.ErrorIs(t, err, guest.ErrInvalidEmail)
		assert.Equal(t, "John Smith", g.Name().String())
		assert.Equal(t, g.CreatedAt(), g.UpdatedAt())
	})

	t.Run("replaces every field and bumps updated_at", func(t *testing.T) {
		require.NoError(t, g.UpdateContact("Jane Doe", "jane@example.com", "+1-555-0102", later))
		assert.Equal(t, "Jane Doe", g.Name().String())
		assert.Equal(t, "jane@example.com", g.Email().String())
		assert.Equal(t, "example.com", g.Email().Domain())
		assert.Equal(t, later, g.UpdatedAt())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewGuestBuilder()
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
