//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"phantom-mask/internal/domain/user"
	"phantom-mask/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		username, _ := user.NewUsername("tester")
		expected := user.NewUser(email, username, "hashed_password", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.NotEqual(t, "password123", actual.PasswordHash())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case is accepted",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Valid@Example.COM") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "150 characters",
				mutate: func(b *builder.UserBuilder) { b.Username = strings.Repeat("a", 150) },
			},
			{
				name:   "151 characters",
				mutate: func(b *builder.UserBuilder) { b.Username = strings.Repeat("a", 151) },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "blank",
				mutate: func(b *builder.UserBuilder) { b.Username = "   " },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})
}

func TestEmailIsLowercased(t *testing.T) {
	email, err := user.NewEmail("  New@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", email.Value())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
