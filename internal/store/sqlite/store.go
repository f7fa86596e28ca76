// Package sqlite 以 GORM + SQLite 實作 store.Store，供本機開發與端對端測試使用
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// IsDSN 判斷 DATABASE_URL 是否指向 SQLite
func IsDSN(url string) bool {
	return strings.HasPrefix(url, "sqlite://") ||
		strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db") ||
		url == ":memory:"
}

// Open 開啟資料庫並 AutoMigrate
func Open(dsn string) (*Store, error) {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		// 時間一律存 UTC，updated_at 字串排序才會正確
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite 單一寫入者，避免 database is locked 與記憶體資料庫分裂
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Area{}, &model.Task{}, &model.Note{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return &Store{db: db}, nil
}

func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func wrap(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, store.ErrEmailTaken)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// updateByID 套用欄位更新並刷新 updated_at，沒有符合的資料回傳 ErrNotFound
func (s *Store) updateByID(ctx context.Context, op string, m any, id int, fields map[string]any) error {
	fields["updated_at"] = s.db.NowFunc()
	res := s.db.WithContext(ctx).Model(m).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, op string, m any, id int) error {
	res := s.db.WithContext(ctx).Delete(m, id)
	if res.Error != nil {
		return wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
