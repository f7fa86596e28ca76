// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254" example:"alice@example.com"`
	FullName string `json:"full_name" validate:"required,max=255" example:"Alice Chen"`
	// bcrypt 只使用前 72 bytes
	Password string `json:"password" validate:"required,max=72" example:"Secret123!"`
}
