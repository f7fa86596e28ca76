package api

import (
	"time"

	"focusflow/internal/model"
	"focusflow/internal/patch"
	"focusflow/internal/store"
)

// swagger:model api.CreateNoteRequest
type CreateNoteRequest struct {
	Title   string  `json:"title" validate:"required,max=255" example:"Meeting notes"`
	Content *string `json:"content" example:"Discussed roadmap"`
	AreaID  *int    `json:"area_id" example:"1"`
}

func (r *CreateNoteRequest) Note(userID int) *model.Note {
	return &model.Note{
		Title:   r.Title,
		Content: r.Content,
		AreaID:  r.AreaID,
		UserID:  userID,
	}
}

// swagger:model api.UpdateNoteRequest
type UpdateNoteRequest struct {
	Title   patch.Field[string] `json:"title" swaggertype:"string"`
	Content patch.Field[string] `json:"content" swaggertype:"string"`
	AreaID  patch.Field[int]    `json:"area_id" swaggertype:"integer"`
}

func (r *UpdateNoteRequest) Validate() error {
	return requireText("title", r.Title)
}

func (r *UpdateNoteRequest) Patch() store.NotePatch {
	return store.NotePatch{Title: r.Title, Content: r.Content, AreaID: r.AreaID}
}

// swagger:model api.NoteResponse
type NoteResponse struct {
	ID        int       `json:"id" example:"1"`
	Title     string    `json:"title" example:"Meeting notes"`
	Content   *string   `json:"content"`
	AreaID    *int      `json:"area_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNoteResponse(n *model.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		AreaID:    n.AreaID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func NewNoteResponses(notes []model.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, NewNoteResponse(&notes[i]))
	}
	return out
}
