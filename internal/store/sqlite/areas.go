package sqlite

import (
	"context"
	"fmt"

	"focusflow/internal/model"
	"focusflow/internal/store"

	"gorm.io/gorm"
)

func (s *Store) CreateArea(ctx context.Context, a *model.Area) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return wrap("CreateArea", err)
	}
	return nil
}

func (s *Store) GetArea(ctx context.Context, id int) (*model.Area, error) {
	a := &model.Area{}
	if err := s.db.WithContext(ctx).First(a, id).Error; err != nil {
		return nil, wrap("GetArea", err)
	}
	return a, nil
}

func (s *Store) ListAreas(ctx context.Context, userID int, page store.Page) ([]model.Area, error) {
	page = page.Normalize()
	areas := []model.Area{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&areas).Error
	if err != nil {
		return nil, wrap("ListAreas", err)
	}
	return areas, nil
}

func (s *Store) UpdateArea(ctx context.Context, id int, p store.AreaPatch) (*model.Area, error) {
	fields := map[string]any{}
	if p.Name.HasValue() {
		fields["name"] = p.Name.Value
	}
	if p.Color.HasValue() {
		fields["color"] = p.Color.Value
	}
	if err := s.updateByID(ctx, "UpdateArea", &model.Area{}, id, fields); err != nil {
		return nil, err
	}
	return s.GetArea(ctx, id)
}

// DeleteArea 在同一個交易內把 task/note 的 area_id 清成 NULL，再刪除 area
func (s *Store) DeleteArea(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		detach := map[string]any{"area_id": nil, "updated_at": s.db.NowFunc()}
		for _, m := range []any{&model.Task{}, &model.Note{}} {
			if err := tx.Model(m).Where("area_id = ?", id).Updates(detach).Error; err != nil {
				return wrap("DeleteArea", err)
			}
		}
		res := tx.Delete(&model.Area{}, id)
		if res.Error != nil {
			return wrap("DeleteArea", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("DeleteArea: %w", store.ErrNotFound)
		}
		return nil
	})
}
