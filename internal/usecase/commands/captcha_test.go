//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"phantom-mask/internal/domain/captcha"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	answer   string
	rendered []string
}

func (r *stubRenderer) NewAnswer() string { return r.answer }

func (r *stubRenderer) RenderPNG(answer string) ([]byte, error) {
	r.rendered = append(r.rendered, answer)
	return []byte("png:" + answer), nil
}

var hashKeyPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

func newCaptchaCommands(answer string) (*fakeUoW, commands.CaptchaCommands, *clock.FixedClock, *stubRenderer) {
	uow := newFakeUoW()
	clk := clock.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	renderer := &stubRenderer{answer: answer}
	return uow, commands.NewCaptchaCommands(uow, renderer, clk, 5*time.Minute), clk, renderer
}

func TestCaptchaIssue(t *testing.T) {
	uow, cmd, clk, _ := newCaptchaCommands("123456")

	issued, err := cmd.Issue(context.Background())

	require.NoError(t, err)
	assert.Regexp(t, hashKeyPattern, issued.HashKey)
	assert.Equal(t, clk.Now().Add(5*time.Minute), issued.ExpiresAt)
	stored, ok := uow.db.captchas[issued.HashKey]
	require.True(t, ok)
	assert.Equal(t, "123456", stored.Response())

	second, err := cmd.Issue(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, issued.HashKey, second.HashKey)
}

func TestCaptchaVerify(t *testing.T) {
	t.Run("correct answer consumes the challenge", func(t *testing.T) {
		uow, cmd, _, _ := newCaptchaCommands("123456")
		issued, err := cmd.Issue(context.Background())
		require.NoError(t, err)

		require.NoError(t, cmd.Verify(context.Background(), issued.HashKey, "123456"))
		assert.NotContains(t, uow.db.captchas, issued.HashKey)

		err = cmd.Verify(context.Background(), issued.HashKey, "123456")
		require.ErrorIs(t, err, commands.ErrInvalidCaptchaHashKey)
	})

	t.Run("answers are compared case-insensitively", func(t *testing.T) {
		_, cmd, _, _ := newCaptchaCommands("AbCd")
		issued, err := cmd.Issue(context.Background())
		require.NoError(t, err)

		require.NoError(t, cmd.Verify(context.Background(), issued.HashKey, " abcD "))
	})

	t.Run("wrong answer still consumes the challenge", func(t *testing.T) {
		uow, cmd, _, _ := newCaptchaCommands("123456")
		issued, err := cmd.Issue(context.Background())
		require.NoError(t, err)

		err = cmd.Verify(context.Background(), issued.HashKey, "654321")

		require.ErrorIs(t, err, commands.ErrInvalidCaptcha)
		assert.Equal(t, "Invalid Captcha: 654321", errs.Detail(err))
		assert.NotContains(t, uow.db.captchas, issued.HashKey)
	})

	t.Run("unknown hash key", func(t *testing.T) {
		_, cmd, _, _ := newCaptchaCommands("123456")

		err := cmd.Verify(context.Background(), "deadbeef", "123456")

		require.ErrorIs(t, err, commands.ErrInvalidCaptchaHashKey)
		assert.Equal(t, "Invalid Captcha Hash Key: deadbeef", errs.Detail(err))
	})

	t.Run("expired challenge", func(t *testing.T) {
		_, cmd, clk, _ := newCaptchaCommands("123456")
		issued, err := cmd.Issue(context.Background())
		require.NoError(t, err)
		clk.Advance(5 * time.Minute)

		err = cmd.Verify(context.Background(), issued.HashKey, "123456")

		require.ErrorIs(t, err, commands.ErrInvalidCaptchaHashKey)
	})

	t.Run("expired challenges are purged on every attempt", func(t *testing.T) {
		uow, cmd, clk, _ := newCaptchaCommands("123456")
		stale, err := captcha.NewChallenge("stale", "1", clk.Now().Add(-time.Second))
		require.NoError(t, err)
		uow.db.captchas[stale.HashKey()] = stale

		_ = cmd.Verify(context.Background(), "unknown", "1")

		assert.Empty(t, uow.db.captchas)
	})
}

func TestCaptchaRenderImage(t *testing.T) {
	t.Run("renders the stored answer", func(t *testing.T) {
		_, cmd, _, renderer := newCaptchaCommands("424242")
		issued, err := cmd.Issue(context.Background())
		require.NoError(t, err)

		png, err := cmd.RenderImage(context.Background(), issued.HashKey)

		require.NoError(t, err)
		assert.Equal(t, []byte("png:424242"), png)
		assert.Equal(t, []string{"424242"}, renderer.rendered)
	})

	t.Run("unknown hash key", func(t *testing.T) {
		_, cmd, _, _ := newCaptchaCommands("424242")

		_, err := cmd.RenderImage(context.Background(), "missing")

		require.ErrorIs(t, err, commands.ErrCaptchaNotFound)
	})

	t.Run("expired challenge", func(t *testing.T) {
		_, cmd, clk, renderer := newCaptchaCommands("424242")
		issued, err := cmd.Issue(context.Background())
		require.NoError(t, err)
		clk.Advance(time.Hour)

		_, err = cmd.RenderImage(context.Background(), issued.HashKey)

		require.ErrorIs(t, err, commands.ErrCaptchaNotFound)
		assert.Empty(t, renderer.rendered)
	})
}
