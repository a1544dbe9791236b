//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/pkg/jwt"
	"phantom-mask/internal/pkg/password"
	"phantom-mask/internal/usecase/commands"
	"phantom-mask/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	err   error
	calls int
}

func (v *stubVerifier) Verify(context.Context, string, string) error {
	v.calls++
	return v.err
}

var goodCaptcha = commands.CaptchaAnswer{HashKey: "key", Answer: "123456"}

func newAuthCommands() (*fakeUoW, commands.AuthCommands, *stubVerifier, *jwt.Service) {
	uow := newFakeUoW()
	verifier := &stubVerifier{}
	svc := jwt.NewService("test-secret-key", 15*time.Minute, time.Hour)
	clk := clock.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return uow, commands.NewAuthCommands(uow, verifier, svc, clk), verifier, svc
}

func assertTokenPair(t *testing.T, svc *jwt.Service, pair *commands.TokenPair) uuid.UUID {
	t.Helper()
	access, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeAccess, access.TokenType)

	refresh, err := svc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, refresh.TokenType)
	assert.Equal(t, access.UserID, refresh.UserID)
	return access.UserID
}

func TestRegister(t *testing.T) {
	t.Run("creates the user and issues tokens", func(t *testing.T) {
		uow, cmd, verifier, svc := newAuthCommands()

		pair, err := cmd.Register(context.Background(), commands.RegisterInput{
			Email: "New@Example.com", Username: "newbie", Password: "password123", Captcha: goodCaptcha,
		})

		require.NoError(t, err)
		userID := assertTokenPair(t, svc, pair)
		stored, ok := uow.db.users[userID]
		require.True(t, ok)
		assert.Equal(t, "new@example.com", stored.Email().Value())
		require.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
		assert.Equal(t, 1, verifier.calls)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uow, cmd, _, _ := newAuthCommands()
		existing, err := builder.NewUserBuilder().WithEmail("taken@example.com").BuildDomain()
		require.NoError(t, err)
		uow.db.users[existing.ID()] = existing

		_, err = cmd.Register(context.Background(), commands.RegisterInput{
			Email: "taken@example.com", Username: "again", Password: "password123", Captcha: goodCaptcha,
		})

		require.ErrorIs(t, err, commands.ErrDuplicateEmail)
		assert.Len(t, uow.db.users, 1)
	})

	t.Run("invalid input skips the captcha", func(t *testing.T) {
		_, cmd, verifier, _ := newAuthCommands()

		_, err := cmd.Register(context.Background(), commands.RegisterInput{
			Email: "not-an-email", Username: "x", Password: "password123", Captcha: goodCaptcha,
		})

		require.ErrorIs(t, err, commands.ErrInvalidRegistration)
		assert.Equal(t, 0, verifier.calls)
	})

	t.Run("captcha failure creates nothing", func(t *testing.T) {
		uow, cmd, verifier, _ := newAuthCommands()
		verifier.err = errs.WithDetail(commands.ErrInvalidCaptcha, "Invalid Captcha: 1")

		_, err := cmd.Register(context.Background(), commands.RegisterInput{
			Email: "new@example.com", Username: "newbie", Password: "password123", Captcha: goodCaptcha,
		})

		require.ErrorIs(t, err, commands.ErrInvalidCaptcha)
		assert.Empty(t, uow.db.users)
	})
}

func TestLogin(t *testing.T) {
	setup := func(t *testing.T) (*fakeUoW, commands.AuthCommands, *stubVerifier, *jwt.Service, uuid.UUID) {
		t.Helper()
		uow, cmd, verifier, svc := newAuthCommands()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		uow.db.users[u.ID()] = u
		return uow, cmd, verifier, svc, u.ID()
	}

	t.Run("valid credentials", func(t *testing.T) {
		uow, cmd, _, svc, userID := setup(t)

		pair, err := cmd.Login(context.Background(), commands.LoginInput{
			Email: "test@example.com", Password: "password123", Captcha: goodCaptcha,
		})

		require.NoError(t, err)
		assert.Equal(t, userID, assertTokenPair(t, svc, pair))
		require.NotNil(t, uow.db.users[userID].LastLogin())
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		uow, cmd, _, _, _ := setup(t)
		uow.failOn["Users.UpdateLastLogin"] = errs.New("connection reset")

		_, err := cmd.Login(context.Background(), commands.LoginInput{
			Email: "test@example.com", Password: "password123", Captcha: goodCaptcha,
		})

		require.NoError(t, err)
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "wrong password", email: "test@example.com", password: "wrongpass1", wantErr: commands.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "password123", wantErr: commands.ErrInvalidCredentials},
		{name: "malformed email", email: "nobody", password: "password123", wantErr: commands.ErrAuthenticationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd, _, _, _ := setup(t)

			pair, err := cmd.Login(context.Background(), commands.LoginInput{
				Email: tt.email, Password: tt.password, Captcha: goodCaptcha,
			})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, pair)
		})
	}

	t.Run("captcha failure issues no token", func(t *testing.T) {
		_, cmd, verifier, _, _ := setup(t)
		verifier.err = commands.ErrInvalidCaptchaHashKey

		pair, err := cmd.Login(context.Background(), commands.LoginInput{
			Email: "test@example.com", Password: "password123", Captcha: goodCaptcha,
		})

		require.ErrorIs(t, err, commands.ErrInvalidCaptchaHashKey)
		assert.Nil(t, pair)
	})
}

func TestRefreshToken(t *testing.T) {
	uow, cmd, _, svc := newAuthCommands()
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	uow.db.users[u.ID()] = u

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		refresh, err := svc.GenerateRefreshToken(u.ID())
		require.NoError(t, err)

		pair, err := cmd.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		assert.Equal(t, u.ID(), assertTokenPair(t, svc, pair))
	})

	t.Run("access token is rejected", func(t *testing.T) {
		access, err := svc.GenerateAccessToken(u.ID())
		require.NoError(t, err)

		_, err = cmd.RefreshToken(context.Background(), access)

		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := cmd.RefreshToken(context.Background(), "not.a.token")

		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deleted user", func(t *testing.T) {
		refresh, err := svc.GenerateRefreshToken(uuid.New())
		require.NoError(t, err)

		_, err = cmd.RefreshToken(context.Background(), refresh)

		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
