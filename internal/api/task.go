package api

import (
	"errors"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/patch"
	"focusflow/internal/store"
)

// swagger:model api.CreateTaskRequest
type CreateTaskRequest struct {
	Title       string         `json:"title" validate:"required,max=255" example:"Write weekly report"`
	Description *string        `json:"description" example:"Summarize sprint"`
	DueDate     *string        `json:"due_date" validate:"omitempty,max=32" example:"2026-01-01"`
	Completed   bool           `json:"completed" example:"false"`
	Priority    model.Priority `json:"priority" validate:"omitempty,oneof=Low Medium High" enums:"Low,Medium,High" example:"Medium"`
	AreaID      *int           `json:"area_id" example:"1"`
}

func (r *CreateTaskRequest) Task(userID int) *model.Task {
	prio := r.Priority
	if prio == "" {
		prio = model.PriorityMedium
	}
	return &model.Task{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
		Priority:    prio,
		AreaID:      r.AreaID,
		UserID:      userID,
	}
}

// UpdateTaskRequest 只更新有出現的欄位；description、due_date、area_id 可設為 null
// swagger:model api.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       patch.Field[string]         `json:"title" swaggertype:"string"`
	Description patch.Field[string]         `json:"description" swaggertype:"string"`
	DueDate     patch.Field[string]         `json:"due_date" swaggertype:"string"`
	Completed   patch.Field[bool]           `json:"completed" swaggertype:"boolean"`
	Priority    patch.Field[model.Priority] `json:"priority" swaggertype:"string" enums:"Low,Medium,High"`
	AreaID      patch.Field[int]            `json:"area_id" swaggertype:"integer"`
}

func (r *UpdateTaskRequest) Validate() error {
	if err := requireText("title", r.Title); err != nil {
		return err
	}
	if err := requirePresentValue("completed", r.Completed); err != nil {
		return err
	}
	if err := requirePresentValue("priority", r.Priority); err != nil {
		return err
	}
	if r.Priority.Set && !r.Priority.Value.Valid() {
		return errors.New("priority must be one of Low, Medium, High")
	}
	return nil
}

func (r *UpdateTaskRequest) Patch() store.TaskPatch {
	return store.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
		Priority:    r.Priority,
		AreaID:      r.AreaID,
	}
}

// swagger:model api.TaskResponse
type TaskResponse struct {
	ID          int            `json:"id" example:"1"`
	Title       string         `json:"title" example:"Write weekly report"`
	Description *string        `json:"description"`
	DueDate     *string        `json:"due_date" example:"2026-01-01"`
	Completed   bool           `json:"completed"`
	Priority    model.Priority `json:"priority" example:"Medium"`
	AreaID      *int           `json:"area_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Priority:    t.Priority,
		AreaID:      t.AreaID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
