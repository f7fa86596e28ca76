package postgres

import (
	"context"
	"fmt"

	"focusflow/internal/model"
	"focusflow/internal/store"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, title, description, due_date, completed, priority, area_id, user_id, created_at, updated_at`

func scanTask(row pgx.Row) (*model.Task, error) {
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Completed,
		&t.Priority,
		&t.AreaID,
		&t.UserID,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func collectTasks(op string, rows pgx.Rows, err error) ([]model.Task, error) {
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return tasks, nil
}

func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	row := s.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, due_date, completed, priority, area_id, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.Title,
		t.Description,
		t.DueDate,
		t.Completed,
		t.Priority,
		t.AreaID,
		t.UserID,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return wrap("CreateTask", err)
	}
	return nil
}

func (s *Store) GetTask(ctx context.Context, id int) (*model.Task, error) {
	t, err := scanTask(s.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetTask", err)
	}
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, f store.TaskFilter) ([]model.Task, error) {
	page := f.Page.Normalize()
	where := `user_id = $1`
	args := []any{f.UserID}
	if f.AreaID != nil {
		args = append(args, *f.AreaID)
		where += ` AND area_id = $2`
	}
	args = append(args, page.Offset, page.Limit)
	sql := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY id OFFSET $%d LIMIT $%d`,
		taskColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	return collectTasks("ListTasks", rows, err)
}

func (s *Store) UpdateTask(ctx context.Context, id int, p store.TaskPatch) (*model.Task, error) {
	var b setBuilder
	if p.Title.HasValue() {
		b.add("title", p.Title.Value)
	}
	if p.Description.Set {
		b.add("description", p.Description.Ptr())
	}
	if p.DueDate.Set {
		b.add("due_date", p.DueDate.Ptr())
	}
	if p.Completed.HasValue() {
		b.add("completed", p.Completed.Value)
	}
	if p.Priority.HasValue() {
		b.add("priority", p.Priority.Value)
	}
	if p.AreaID.Set {
		b.add("area_id", p.AreaID.Ptr())
	}
	sql, args := b.build("tasks", id, taskColumns)
	t, err := scanTask(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrap("UpdateTask", err)
	}
	return t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "DeleteTask", "tasks", id)
}

func (s *Store) SearchTasks(ctx context.Context, userID int, query string) ([]model.Task, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE user_id = $1
		   AND (title ILIKE $2 ESCAPE '\' OR description ILIKE $2 ESCAPE '\')`,
		userID,
		store.LikePattern(query),
	)
	return collectTasks("SearchTasks", rows, err)
}
