package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面
// 目前用於健康檢查與登入失敗計數，*redis.Client 直接實作
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type FakeCache struct {
	GetFn    func(ctx context.Context, key string) *redis.StringCmd
	SetFn    func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	IncrFn   func(ctx context.Context, key string) *redis.IntCmd
	ExpireFn func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	DelFn    func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn  func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.IncrFn != nil {
		return f.IncrFn(ctx, key)
	}
	panic("unexpected Incr")
}

func (f *FakeCache) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	if f.ExpireFn != nil {
		return f.ExpireFn(ctx, key, ttl)
	}
	panic("unexpected Expire")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
