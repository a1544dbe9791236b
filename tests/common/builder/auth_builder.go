//go:build unit || e2e

package builder

import (
	"phantom-mask/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email          string
	Username       string
	Password       string
	Captcha        string
	CaptchaHashKey string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:          "test@example.com",
		Username:       "tester",
		Password:       "password123",
		Captcha:        "123456",
		CaptchaHashKey: "0123456789abcdef0123456789abcdef01234567",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildLoginDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:          a.Email,
		Password:       a.Password,
		Captcha:        a.Captcha,
		CaptchaHashKey: a.CaptchaHashKey,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() request.RegisterRequest {
	return request.RegisterRequest{
		Email:          a.Email,
		Username:       a.Username,
		Password:       a.Password,
		Captcha:        a.Captcha,
		CaptchaHashKey: a.CaptchaHashKey,
	}
}
