package sqlite

import (
	"context"

	"focusflow/internal/model"
	"focusflow/internal/store"
)

func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return wrap("CreateTask", err)
	}
	return nil
}

func (s *Store) GetTask(ctx context.Context, id int) (*model.Task, error) {
	t := &model.Task{}
	if err := s.db.WithContext(ctx).First(t, id).Error; err != nil {
		return nil, wrap("GetTask", err)
	}
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, f store.TaskFilter) ([]model.Task, error) {
	page := f.Page.Normalize()
	q := s.db.WithContext(ctx).Where("user_id = ?", f.UserID)
	if f.AreaID != nil {
		q = q.Where("area_id = ?", *f.AreaID)
	}
	tasks := []model.Task{}
	if err := q.Order("id").Offset(page.Offset).Limit(page.Limit).Find(&tasks).Error; err != nil {
		return nil, wrap("ListTasks", err)
	}
	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, id int, p store.TaskPatch) (*model.Task, error) {
	fields := map[string]any{}
	if p.Title.HasValue() {
		fields["title"] = p.Title.Value
	}
	if p.Description.Set {
		fields["description"] = p.Description.Ptr()
	}
	if p.DueDate.Set {
		fields["due_date"] = p.DueDate.Ptr()
	}
	if p.Completed.HasValue() {
		fields["completed"] = p.Completed.Value
	}
	if p.Priority.HasValue() {
		fields["priority"] = string(p.Priority.Value)
	}
	if p.AreaID.Set {
		fields["area_id"] = p.AreaID.Ptr()
	}
	if err := s.updateByID(ctx, "UpdateTask", &model.Task{}, id, fields); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, id)
}

func (s *Store) DeleteTask(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "DeleteTask", &model.Task{}, id)
}

func (s *Store) SearchTasks(ctx context.Context, userID int, query string) ([]model.Task, error) {
	// SQLite 的 LOWER/LIKE 只處理 ASCII，大小寫比對在 Go 裡做
	all := []model.Task{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&all).Error; err != nil {
		return nil, wrap("SearchTasks", err)
	}
	tasks := []model.Task{}
	for _, t := range all {
		if store.ContainsFold(query, t.Title, deref(t.Description)) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}
