package api

import (
	"time"

	"focusflow/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	FullName  string    `json:"full_name" example:"Alice Chen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
