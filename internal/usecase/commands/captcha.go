package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"phantom-mask/internal/domain/captcha"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/shared"
)

var (
	ErrInvalidCaptchaHashKey = errs.New("invalid captcha hash key")
	ErrInvalidCaptcha        = errs.New("invalid captcha")
	ErrCaptchaNotFound       = errs.New("captcha not found")
)

// hash keys are 20 random bytes, hex encoded
const hashKeyBytes = 20

// CaptchaRenderer draws challenge answers. It never sees hash keys.
type CaptchaRenderer interface {
	NewAnswer() string
	RenderPNG(answer string) ([]byte, error)
}

type IssuedCaptcha struct {
	HashKey   string
	ExpiresAt time.Time
}

//go:generate mockgen -destination=../../../tests/mock/commands/captcha.go -package=commandsmock phantom-mask/internal/usecase/commands CaptchaCommands
type CaptchaCommands interface {
	Issue(ctx context.Context) (*IssuedCaptcha, error)
	// Verify consumes the challenge whatever the outcome.
	Verify(ctx context.Context, hashKey, answer string) error
	RenderImage(ctx context.Context, hashKey string) ([]byte, error)
}

type captchaCommandsImpl struct {
	uow      shared.UnitOfWork
	renderer CaptchaRenderer
	clock    clock.Clock
	ttl      time.Duration
}

func NewCaptchaCommands(uow shared.UnitOfWork, renderer CaptchaRenderer, clk clock.Clock, ttl time.Duration) CaptchaCommands {
	return &captchaCommandsImpl{uow: uow, renderer: renderer, clock: clk, ttl: ttl}
}

func (c *captchaCommandsImpl) Issue(ctx context.Context) (*IssuedCaptcha, error) {
	hashKey, err := newHashKey()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate captcha hash key")
	}

	challenge, err := captcha.NewChallenge(hashKey, c.renderer.NewAnswer(), c.clock.Now().Add(c.ttl))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build captcha challenge")
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Captchas().Create(ctx, challenge)
	})
	if err != nil {
		return nil, err
	}

	return &IssuedCaptcha{HashKey: challenge.HashKey(), ExpiresAt: challenge.ExpiresAt()}, nil
}

// Verify runs in its own transaction so the purge commits even when the answer is wrong.
func (c *captchaCommandsImpl) Verify(ctx context.Context, hashKey, answer string) error {
	var verifyErr error
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		verifyErr = nil
		now := c.clock.Now()

		challenge, err := tx.Captchas().FindByHashKey(ctx, hashKey)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			verifyErr = errs.WithDetail(ErrInvalidCaptchaHashKey, fmt.Sprintf("Invalid Captcha Hash Key: %s", hashKey))
		case err != nil:
			return err
		default:
			switch err := challenge.Verify(answer, now); {
			case err == nil:
			case errors.Is(err, captcha.ErrInvalidHashKey):
				verifyErr = errs.WithDetail(ErrInvalidCaptchaHashKey, fmt.Sprintf("Invalid Captcha Hash Key: %s", hashKey))
			default:
				verifyErr = errs.WithDetail(ErrInvalidCaptcha, fmt.Sprintf("Invalid Captcha: %s", answer))
			}
			if err := tx.Captchas().Delete(ctx, hashKey); err != nil {
				return err
			}
		}

		purged, err := tx.Captchas().DeleteExpired(ctx, now)
		if err != nil {
			return err
		}
		if purged > 0 {
			slog.Debug("expired captchas purged", "count", purged)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return verifyErr
}

func (c *captchaCommandsImpl) RenderImage(ctx context.Context, hashKey string) ([]byte, error) {
	var challenge *captcha.Challenge
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		challenge, err = tx.Captchas().FindByHashKey(ctx, hashKey)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, ErrCaptchaNotFound), fmt.Sprintf("Invalid Captcha Hash Key: %s", hashKey))
		}
		return nil, err
	}
	if challenge.Expired(c.clock.Now()) {
		return nil, errs.WithDetail(ErrCaptchaNotFound, fmt.Sprintf("Invalid Captcha Hash Key: %s", hashKey))
	}

	png, err := c.renderer.RenderPNG(challenge.Response())
	if err != nil {
		return nil, errs.Wrap(err, "failed to render captcha")
	}
	return png, nil
}

func newHashKey() (string, error) {
	b := make([]byte, hashKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
