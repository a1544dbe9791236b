package response

import "phantom-mask/internal/usecase/commands"

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func FromTokenPair(p *commands.TokenPair) *TokenResponse {
	return &TokenResponse{Access: p.AccessToken, Refresh: p.RefreshToken}
}

type CaptchaResponse struct {
	HashKey  string `json:"hash_key"`
	ImageURL string `json:"image_url"`
}
