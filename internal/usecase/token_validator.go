package usecase

import (
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAccessToken = errs.New("token is not an access token")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateAccessToken rejects refresh tokens presented as bearer credentials.
func (t *tokenValidatorImpl) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, ErrNotAccessToken
	}

	return claims.UserID, nil
}
