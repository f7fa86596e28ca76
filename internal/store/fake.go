package store

import (
	"context"
	"time"

	"focusflow/internal/model"
)

// FakeStore 測試用，未設定的方法被呼叫時 panic
type FakeStore struct {
	CreateUserFn     func(ctx context.Context, u *model.User) error
	GetUserByEmailFn func(ctx context.Context, email string) (*model.User, error)
	TouchLastLoginFn func(ctx context.Context, userID int, at time.Time) error

	CreateAreaFn func(ctx context.Context, a *model.Area) error
	GetAreaFn    func(ctx context.Context, id int) (*model.Area, error)
	ListAreasFn  func(ctx context.Context, userID int, page Page) ([]model.Area, error)
	UpdateAreaFn func(ctx context.Context, id int, p AreaPatch) (*model.Area, error)
	DeleteAreaFn func(ctx context.Context, id int) error

	CreateTaskFn  func(ctx context.Context, t *model.Task) error
	GetTaskFn     func(ctx context.Context, id int) (*model.Task, error)
	ListTasksFn   func(ctx context.Context, f TaskFilter) ([]model.Task, error)
	UpdateTaskFn  func(ctx context.Context, id int, p TaskPatch) (*model.Task, error)
	DeleteTaskFn  func(ctx context.Context, id int) error
	SearchTasksFn func(ctx context.Context, userID int, query string) ([]model.Task, error)

	CreateNoteFn  func(ctx context.Context, n *model.Note) error
	GetNoteFn     func(ctx context.Context, id int) (*model.Note, error)
	ListNotesFn   func(ctx context.Context, f NoteFilter) ([]model.Note, error)
	UpdateNoteFn  func(ctx context.Context, id int, p NotePatch) (*model.Note, error)
	DeleteNoteFn  func(ctx context.Context, id int) error
	SearchNotesFn func(ctx context.Context, userID int, query string) ([]model.Note, error)

	PingFn  func(ctx context.Context) error
	CloseFn func() error
}

var _ Store = (*FakeStore)(nil)

func (f *FakeStore) CreateUser(ctx context.Context, u *model.User) error {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(ctx, u)
	}
	panic("unexpected CreateUser")
}

func (f *FakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.GetUserByEmailFn != nil {
		return f.GetUserByEmailFn(ctx, email)
	}
	panic("unexpected GetUserByEmail")
}

func (f *FakeStore) TouchLastLogin(ctx context.Context, userID int, at time.Time) error {
	if f.TouchLastLoginFn != nil {
		return f.TouchLastLoginFn(ctx, userID, at)
	}
	panic("unexpected TouchLastLogin")
}

func (f *FakeStore) CreateArea(ctx context.Context, a *model.Area) error {
	if f.CreateAreaFn != nil {
		return f.CreateAreaFn(ctx, a)
	}
	panic("unexpected CreateArea")
}

func (f *FakeStore) GetArea(ctx context.Context, id int) (*model.Area, error) {
	if f.GetAreaFn != nil {
		return f.GetAreaFn(ctx, id)
	}
	panic("unexpected GetArea")
}

func (f *FakeStore) ListAreas(ctx context.Context, userID int, page Page) ([]model.Area, error) {
	if f.ListAreasFn != nil {
		return f.ListAreasFn(ctx, userID, page)
	}
	panic("unexpected ListAreas")
}

func (f *FakeStore) UpdateArea(ctx context.Context, id int, p AreaPatch) (*model.Area, error) {
	if f.UpdateAreaFn != nil {
		return f.UpdateAreaFn(ctx, id, p)
	}
	panic("unexpected UpdateArea")
}

func (f *FakeStore) DeleteArea(ctx context.Context, id int) error {
	if f.DeleteAreaFn != nil {
		return f.DeleteAreaFn(ctx, id)
	}
	panic("unexpected DeleteArea")
}

func (f *FakeStore) CreateTask(ctx context.Context, t *model.Task) error {
	if f.CreateTaskFn != nil {
		return f.CreateTaskFn(ctx, t)
	}
	panic("unexpected CreateTask")
}

func (f *FakeStore) GetTask(ctx context.Context, id int) (*model.Task, error) {
	if f.GetTaskFn != nil {
		return f.GetTaskFn(ctx, id)
	}
	panic("unexpected GetTask")
}

func (f *FakeStore) ListTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	if f.ListTasksFn != nil {
		return f.ListTasksFn(ctx, filter)
	}
	panic("unexpected ListTasks")
}

func (f *FakeStore) UpdateTask(ctx context.Context, id int, p TaskPatch) (*model.Task, error) {
	if f.UpdateTaskFn != nil {
		return f.UpdateTaskFn(ctx, id, p)
	}
	panic("unexpected UpdateTask")
}

func (f *FakeStore) DeleteTask(ctx context.Context, id int) error {
	if f.DeleteTaskFn != nil {
		return f.DeleteTaskFn(ctx, id)
	}
	panic("unexpected DeleteTask")
}

func (f *FakeStore) SearchTasks(ctx context.Context, userID int, query string) ([]model.Task, error) {
	if f.SearchTasksFn != nil {
		return f.SearchTasksFn(ctx, userID, query)
	}
	panic("unexpected SearchTasks")
}

func (f *FakeStore) CreateNote(ctx context.Context, n *model.Note) error {
	if f.CreateNoteFn != nil {
		return f.CreateNoteFn(ctx, n)
	}
	panic("unexpected CreateNote")
}

func (f *FakeStore) GetNote(ctx context.Context, id int) (*model.Note, error) {
	if f.GetNoteFn != nil {
		return f.GetNoteFn(ctx, id)
	}
	panic("unexpected GetNote")
}

func (f *FakeStore) ListNotes(ctx context.Context, filter NoteFilter) ([]model.Note, error) {
	if f.ListNotesFn != nil {
		return f.ListNotesFn(ctx, filter)
	}
	panic("unexpected ListNotes")
}

func (f *FakeStore) UpdateNote(ctx context.Context, id int, p NotePatch) (*model.Note, error) {
	if f.UpdateNoteFn != nil {
		return f.UpdateNoteFn(ctx, id, p)
	}
	panic("unexpected UpdateNote")
}

func (f *FakeStore) DeleteNote(ctx context.Context, id int) error {
	if f.DeleteNoteFn != nil {
		return f.DeleteNoteFn(ctx, id)
	}
	panic("unexpected DeleteNote")
}

func (f *FakeStore) SearchNotes(ctx context.Context, userID int, query string) ([]model.Note, error) {
	if f.SearchNotesFn != nil {
		return f.SearchNotesFn(ctx, userID, query)
	}
	panic("unexpected SearchNotes")
}

func (f *FakeStore) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

// Close 未設定時為 no-op
func (f *FakeStore) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
