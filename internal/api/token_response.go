package api

import "time"

// swagger:model api.TokenResponse
type TokenResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOiJSUzI1NiIs..."`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time `json:"expires_at"`
}
