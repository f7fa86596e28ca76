// Package store 定義資料存取介面，由 postgres 與 sqlite 兩種實作提供
package store

import (
	"context"
	"errors"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/patch"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

const DefaultLimit = 100

// Page 為 offset/limit 分頁參數
type Page struct {
	Offset int
	Limit  int
}

// Normalize 補上預設值
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// TaskFilter 限定 user，可選 area
type TaskFilter struct {
	UserID int
	AreaID *int
	Page   Page
}

type NoteFilter struct {
	UserID int
	AreaID *int
	Page   Page
}

type AreaPatch struct {
	Name  patch.Field[string]
	Color patch.Field[string]
}

type TaskPatch struct {
	Title       patch.Field[string]
	Description patch.Field[string]
	DueDate     patch.Field[string]
	Completed   patch.Field[bool]
	Priority    patch.Field[model.Priority]
	AreaID      patch.Field[int]
}

type NotePatch struct {
	Title   patch.Field[string]
	Content patch.Field[string]
	AreaID  patch.Field[int]
}

type Users interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLastLogin(ctx context.Context, userID int, at time.Time) error
}

// Areas 的 Get/Update/Delete 以 id 查詢，擁有者檢查由 service 負責
type Areas interface {
	CreateArea(ctx context.Context, a *model.Area) error
	GetArea(ctx context.Context, id int) (*model.Area, error)
	ListAreas(ctx context.Context, userID int, page Page) ([]model.Area, error)
	UpdateArea(ctx context.Context, id int, p AreaPatch) (*model.Area, error)
	DeleteArea(ctx context.Context, id int) error
}

type Tasks interface {
	CreateTask(ctx context.Context, t *model.Task) error
	GetTask(ctx context.Context, id int) (*model.Task, error)
	ListTasks(ctx context.Context, f TaskFilter) ([]model.Task, error)
	UpdateTask(ctx context.Context, id int, p TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id int) error
	// SearchTasks 標題或描述包含 query (不分大小寫)
	SearchTasks(ctx context.Context, userID int, query string) ([]model.Task, error)
}

type Notes interface {
	CreateNote(ctx context.Context, n *model.Note) error
	GetNote(ctx context.Context, id int) (*model.Note, error)
	// ListNotes 依 updated_at 由新到舊
	ListNotes(ctx context.Context, f NoteFilter) ([]model.Note, error)
	UpdateNote(ctx context.Context, id int, p NotePatch) (*model.Note, error)
	DeleteNote(ctx context.Context, id int) error
	SearchNotes(ctx context.Context, userID int, query string) ([]model.Note, error)
}

type Store interface {
	Users
	Areas
	Tasks
	Notes
	Ping(ctx context.Context) error
	Close() error
}
