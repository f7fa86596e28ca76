package api

import (
	"focusflow/internal/model"
	"focusflow/internal/service"
)

// SearchQuery GET /search 的 query 參數
type SearchQuery struct {
	Query    string `validate:"required"`
	ItemType string `validate:"omitempty,oneof=task note"`
	Limit    int    `validate:"min=1"`
}

// NewSearchQuery 回傳帶預設值的 SearchQuery
func NewSearchQuery() SearchQuery {
	return SearchQuery{Limit: service.DefaultSearchLimit}
}

func (q SearchQuery) Params() service.SearchParams {
	return service.SearchParams{Query: q.Query, ItemType: q.ItemType, Limit: q.Limit}
}

// swagger:model api.TaskSearchResult
type TaskSearchResult struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Priority    model.Priority `json:"priority"`
	DueDate     *string        `json:"due_date"`
	Type        string         `json:"type" example:"task"`
}

// swagger:model api.NoteSearchResult
type NoteSearchResult struct {
	ID      int     `json:"id"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
	Type    string  `json:"type" example:"note"`
}

// NewSearchResults 依 hit 類型轉成對應的回應格式
func NewSearchResults(hits []service.SearchHit) []any {
	out := make([]any, 0, len(hits))
	for _, h := range hits {
		switch {
		case h.Task != nil:
			out = append(out, TaskSearchResult{
				ID:          h.Task.ID,
				Title:       h.Task.Title,
				Description: h.Task.Description,
				Priority:    h.Task.Priority,
				DueDate:     h.Task.DueDate,
				Type:        service.ItemTask,
			})
		case h.Note != nil:
			out = append(out, NoteSearchResult{
				ID:      h.Note.ID,
				Title:   h.Note.Title,
				Content: h.Note.Content,
				Type:    service.ItemNote,
			})
		}
	}
	return out
}
