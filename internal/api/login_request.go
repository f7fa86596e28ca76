// File: internal/api/login_request.go
package api

// LoginRequest 使用 OAuth2 password form 格式，username 為 email
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"required" example:"alice@example.com"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}
