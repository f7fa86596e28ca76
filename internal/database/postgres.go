package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pgxpoolNew = pgxpool.New

// NewPgxPool 建立連線池並確認可連線
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
