package postgres

import (
	"context"
	"fmt"

	"focusflow/internal/model"
	"focusflow/internal/store"

	"github.com/jackc/pgx/v5"
)

const areaColumns = `id, name, color, user_id, created_at, updated_at`

func scanArea(row pgx.Row) (*model.Area, error) {
	a := &model.Area{}
	if err := row.Scan(&a.ID, &a.Name, &a.Color, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) CreateArea(ctx context.Context, a *model.Area) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO areas (name, color, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.Name,
		a.Color,
		a.UserID,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return wrap("CreateArea", err)
	}
	return nil
}

func (s *Store) GetArea(ctx context.Context, id int) (*model.Area, error) {
	a, err := scanArea(s.db.QueryRow(ctx, `SELECT `+areaColumns+` FROM areas WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetArea", err)
	}
	return a, nil
}

func (s *Store) ListAreas(ctx context.Context, userID int, page store.Page) ([]model.Area, error) {
	page = page.Normalize()
	rows, err := s.db.Query(ctx,
		`SELECT `+areaColumns+` FROM areas
		 WHERE user_id = $1
		 ORDER BY id
		 OFFSET $2 LIMIT $3`,
		userID,
		page.Offset,
		page.Limit,
	)
	if err != nil {
		return nil, wrap("ListAreas", err)
	}
	defer rows.Close()

	areas := []model.Area{}
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, wrap("ListAreas", err)
		}
		areas = append(areas, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListAreas", err)
	}
	return areas, nil
}

func (s *Store) UpdateArea(ctx context.Context, id int, p store.AreaPatch) (*model.Area, error) {
	var b setBuilder
	if p.Name.HasValue() {
		b.add("name", p.Name.Value)
	}
	if p.Color.HasValue() {
		b.add("color", p.Color.Value)
	}
	sql, args := b.build("areas", id, areaColumns)
	a, err := scanArea(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrap("UpdateArea", err)
	}
	return a, nil
}

// DeleteArea 先把 task/note 的 area_id 清成 NULL 再刪除 area，同一個 statement 內完成
func (s *Store) DeleteArea(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, deleteAreaSQL, id)
	if err != nil {
		return wrap("DeleteArea", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteArea: %w", store.ErrNotFound)
	}
	return nil
}

const deleteAreaSQL = `WITH detached_tasks AS (
    UPDATE tasks SET area_id = NULL, updated_at = now() WHERE area_id = $1
), detached_notes AS (
    UPDATE notes SET area_id = NULL, updated_at = now() WHERE area_id = $1
)
DELETE FROM areas WHERE id = $1`
