package repository

import (
	"context"
	"time"

	"phantom-mask/internal/domain/captcha"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/pgconv"
)

type CaptchaRepository struct {
	db db.DBTX
}

func NewCaptchaRepository(db db.DBTX) *CaptchaRepository {
	return &CaptchaRepository{db: db}
}

func (r *CaptchaRepository) Create(ctx context.Context, c *captcha.Challenge) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO captcha_challenges (hash_key, response, expires_at) VALUES ($1, $2, $3)`,
		c.HashKey(), c.Response(), c.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create captcha challenge", err)
	}
	return nil
}

func (r *CaptchaRepository) FindByHashKey(ctx context.Context, hashKey string) (*captcha.Challenge, error) {
	var (
		key, response string
		expiresAt     time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT hash_key, response, expires_at FROM captcha_challenges WHERE hash_key = $1`,
		hashKey,
	).Scan(&key, &response, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("captcha challenge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find captcha challenge", err)
	}
	return captcha.ReconstructChallenge(key, response, expiresAt), nil
}

func (r *CaptchaRepository) Delete(ctx context.Context, hashKey string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM captcha_challenges WHERE hash_key = $1`, hashKey); err != nil {
		return infra.WrapRepoErr("failed to delete captcha challenge", err)
	}
	return nil
}

func (r *CaptchaRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM captcha_challenges WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired captcha challenges", err)
	}
	return tag.RowsAffected(), nil
}
