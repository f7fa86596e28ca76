package api

import "focusflow/internal/store"

// ListQuery 列表共用的 query 參數
type ListQuery struct {
	Offset int `validate:"min=0"`
	Limit  int `validate:"min=1"`
	// AreaID 只用於 tasks 與 notes
	AreaID *int
}

// NewListQuery 回傳帶預設值的 ListQuery
func NewListQuery() ListQuery {
	return ListQuery{Offset: 0, Limit: store.DefaultLimit}
}

func (q ListQuery) Page() store.Page {
	return store.Page{Offset: q.Offset, Limit: q.Limit}.Normalize()
}
