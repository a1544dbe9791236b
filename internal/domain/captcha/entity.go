package captcha

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

var (
	ErrInvalidHashKey = errors.New("invalid captcha hash key")
	ErrInvalidAnswer  = errors.New("invalid captcha")
)

// Challenge is a server issued captcha keyed by an opaque hash key.
type Challenge struct {
	hashKey   string
	response  string
	expiresAt time.Time
}

func NewChallenge(hashKey, answer string, expiresAt time.Time) (*Challenge, error) {
	if strings.TrimSpace(hashKey) == "" {
		return nil, ErrInvalidHashKey
	}
	if strings.TrimSpace(answer) == "" {
		return nil, ErrInvalidAnswer
	}
	return &Challenge{
		hashKey:   hashKey,
		response:  Normalize(answer),
		expiresAt: expiresAt,
	}, nil
}

func ReconstructChallenge(hashKey, response string, expiresAt time.Time) *Challenge {
	return &Challenge{hashKey: hashKey, response: response, expiresAt: expiresAt}
}

func (c *Challenge) HashKey() string      { return c.hashKey }
func (c *Challenge) Response() string     { return c.response }
func (c *Challenge) ExpiresAt() time.Time { return c.expiresAt }

func (c *Challenge) Expired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// Verify checks the submitted answer case-insensitively.
func (c *Challenge) Verify(answer string, now time.Time) error {
	if c.Expired(now) {
		return ErrInvalidHashKey
	}
	if Normalize(answer) != c.response {
		return ErrInvalidAnswer
	}
	return nil
}

func Normalize(answer string) string {
	return cases.Fold().String(strings.TrimSpace(answer))
}
