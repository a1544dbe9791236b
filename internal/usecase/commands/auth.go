package commands

import (
	"context"
	"fmt"
	"log/slog"

	"phantom-mask/internal/domain/auth"
	"phantom-mask/internal/domain/user"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/pkg/jwt"
	"phantom-mask/internal/pkg/password"
	"phantom-mask/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrInvalidRegistration  = errs.New("invalid registration")
	ErrDuplicateEmail       = errs.New("duplicate email")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type CaptchaAnswer struct {
	HashKey string
	Answer  string
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Captcha  CaptchaAnswer
}

type LoginInput struct {
	Email    string
	Password string
	Captcha  CaptchaAnswer
}

//go:generate mockgen -destination=../../../tests/mock/commands/auth.go -package=commandsmock phantom-mask/internal/usecase/commands AuthCommands
type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*TokenPair, error)
	Login(ctx context.Context, in LoginInput) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// CaptchaVerifier is the part of CaptchaCommands that auth needs.
type CaptchaVerifier interface {
	Verify(ctx context.Context, hashKey, answer string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	captcha    CaptchaVerifier
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, captcha CaptchaVerifier, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		captcha:    captcha,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*TokenPair, error) {
	reg, err := auth.NewRegistration(in.Email, in.Username, in.Password)
	if err != nil {
		return nil, errs.WithDetail(errs.Mark(err, ErrInvalidRegistration), err.Error())
	}

	if err := a.captcha.Verify(ctx, in.Captcha.HashKey, in.Captcha.Answer); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(reg.Email(), reg.Username(), hash, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.WithDetail(errs.Mark(err, ErrDuplicateEmail), fmt.Sprintf("user with email %s already exists.", reg.Email().Value()))
		}
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID())
	return a.issue(u.ID())
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*TokenPair, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.WithDetail(errs.Mark(err, ErrAuthenticationFailed), "No active account found with the given credentials")
	}

	if err := a.captcha.Verify(ctx, in.Captcha.HashKey, in.Captcha.Answer); err != nil {
		return nil, err
	}

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := a.validateUser(ctx, tx, credentials)
		if err != nil {
			return err
		}
		userID = u.ID()

		if err := tx.Users().UpdateLastLogin(ctx, u.ID(), a.clock.Now()); err != nil {
			// login still succeeds; last_login is informational
			slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(userID)
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.WithDetail(errs.Mark(err, ErrTokenValidation), "Token is invalid or expired")
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.WithDetail(ErrTokenValidation, "Token has wrong type")
	}

	// the account may have been removed since the token was minted
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().FindByID(ctx, claims.UserID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, ErrUserNotFound), "User not found")
		}
		return nil, err
	}

	return a.issue(claims.UserID)
}

func (a *authCommandsImpl) validateUser(ctx context.Context, tx shared.Tx, credentials auth.Credentials) (*user.User, error) {
	u, err := tx.Users().FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Return same error as password mismatch to prevent user enumeration attacks
			return nil, errs.WithDetail(errs.Mark(err, ErrInvalidCredentials), "No active account found with the given credentials")
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.WithDetail(errs.Mark(err, ErrInvalidCredentials), "No active account found with the given credentials")
	}

	return u, nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
