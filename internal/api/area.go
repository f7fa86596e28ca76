package api

import (
	"errors"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/patch"
	"focusflow/internal/store"
)

// swagger:model api.CreateAreaRequest
type CreateAreaRequest struct {
	Name  string `json:"name" validate:"required,max=255" example:"Personal"`
	Color string `json:"color" validate:"required,max=64" example:"bg-green-500"`
}

func (r *CreateAreaRequest) Area(userID int) *model.Area {
	return &model.Area{Name: r.Name, Color: r.Color, UserID: userID}
}

// UpdateAreaRequest 只更新有出現的欄位
// swagger:model api.UpdateAreaRequest
type UpdateAreaRequest struct {
	Name  patch.Field[string] `json:"name" swaggertype:"string" example:"Personal"`
	Color patch.Field[string] `json:"color" swaggertype:"string" example:"bg-green-500"`
}

func (r *UpdateAreaRequest) Validate() error {
	if err := requireText("name", r.Name); err != nil {
		return err
	}
	return requireText("color", r.Color)
}

func (r *UpdateAreaRequest) Patch() store.AreaPatch {
	return store.AreaPatch{Name: r.Name, Color: r.Color}
}

// swagger:model api.AreaResponse
type AreaResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Work"`
	Color     string    `json:"color" example:"bg-blue-500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAreaResponse(a *model.Area) AreaResponse {
	return AreaResponse{
		ID:        a.ID,
		Name:      a.Name,
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAreaResponses(areas []model.Area) []AreaResponse {
	out := make([]AreaResponse, 0, len(areas))
	for i := range areas {
		out = append(out, NewAreaResponse(&areas[i]))
	}
	return out
}

// requireText 欄位可省略，但出現時不可為 null 或空字串
func requireText(name string, f patch.Field[string]) error {
	if !f.Set {
		return nil
	}
	if f.Null || strings.TrimSpace(f.Value) == "" {
		return errors.New(name + " must not be empty")
	}
	return nil
}

// requirePresentValue 欄位可省略，但出現時不可為 null
func requirePresentValue[T any](name string, f patch.Field[T]) error {
	if f.Set && f.Null {
		return errors.New(name + " must not be null")
	}
	return nil
}
