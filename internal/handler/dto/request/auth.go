package request

import (
	"phantom-mask/internal/usecase/commands"
)

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Username       string `json:"username" binding:"required,max=150"`
	Password       string `json:"password" binding:"required,min=8"`
	Captcha        string `json:"captcha" binding:"required"`
	CaptchaHashKey string `json:"captcha_hash_key" binding:"required"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    r.Email,
		Username: r.Username,
		Password: r.Password,
		Captcha:  commands.CaptchaAnswer{HashKey: r.CaptchaHashKey, Answer: r.Captcha},
	}
}

type LoginRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Captcha        string `json:"captcha" binding:"required"`
	CaptchaHashKey string `json:"captcha_hash_key" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		Captcha:  commands.CaptchaAnswer{HashKey: r.CaptchaHashKey, Answer: r.Captcha},
	}
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
