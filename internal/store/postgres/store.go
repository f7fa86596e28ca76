// Package postgres 以 pgx 實作 store.Store
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focusflow/internal/database"
	"focusflow/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Store struct {
	db database.DB
}

var _ store.Store = (*Store)(nil)

func New(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}

// wrap 統一錯誤格式 "Op: err"，並把 pgx/pg 錯誤轉成 store 的 sentinel
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		// 寫入時參照的 area 已不存在
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// deleteByID 刪除單筆，沒有刪到任何資料回傳 ErrNotFound
func (s *Store) deleteByID(ctx context.Context, op, table string, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return wrap(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}
	return nil
}

// setBuilder 組出 UPDATE ... SET 子句，只包含有出現的欄位
type setBuilder struct {
	sets []string
	args []any
}

func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *setBuilder) build(table string, id int, returning string) (string, []any) {
	sets := append(b.sets, "updated_at = now()")
	args := append(b.args, id)
	return fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		table, strings.Join(sets, ", "), len(args), returning), args
}
