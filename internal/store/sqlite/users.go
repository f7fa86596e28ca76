package sqlite

import (
	"context"
	"fmt"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/store"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return wrap("CreateUser", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(u).Error; err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

// TouchLastLogin 更新 last_login，updated_at 一併設為同一時間
func (s *Store) TouchLastLogin(ctx context.Context, userID int, at time.Time) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		UpdateColumns(map[string]any{"last_login": at, "updated_at": at})
	if res.Error != nil {
		return wrap("TouchLastLogin", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("TouchLastLogin: %w", store.ErrNotFound)
	}
	return nil
}
