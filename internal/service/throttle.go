package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"focusflow/internal/cache"

	"github.com/redis/go-redis/v9"
)

var ErrTooManyAttempts = errors.New("too many failed login attempts, try again later")

// LoginThrottle 以快取計算每個 email 的登入失敗次數
//
// cache 為 nil 或 max <= 0 時停用；快取錯誤只記錄不阻擋登入。
type LoginThrottle struct {
	cache  cache.Cache
	max    int
	window time.Duration
	log    *slog.Logger
}

func NewLoginThrottle(c cache.Cache, max int, window time.Duration, log *slog.Logger) *LoginThrottle {
	if log == nil {
		log = slog.Default()
	}
	return &LoginThrottle{cache: c, max: max, window: window, log: log}
}

func (t *LoginThrottle) enabled() bool {
	return t != nil && t.cache != nil && t.max > 0
}

func throttleKey(email string) string {
	return "login:fail:" + strings.ToLower(email)
}

// Check 失敗次數達上限時回傳 ErrTooManyAttempts
func (t *LoginThrottle) Check(ctx context.Context, email string) error {
	if !t.enabled() {
		return nil
	}
	n, err := t.cache.Get(ctx, throttleKey(email)).Int()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		t.log.Warn("login throttle check failed", slog.String("err", err.Error()))
		return nil
	}
	if n >= t.max {
		return ErrTooManyAttempts
	}
	return nil
}

// Fail 累計一次失敗，第一次失敗時設定視窗過期時間
func (t *LoginThrottle) Fail(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	key := throttleKey(email)
	n, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		t.log.Warn("login throttle incr failed", slog.String("err", err.Error()))
		return
	}
	if n == 1 {
		if err := t.cache.Expire(ctx, key, t.window).Err(); err != nil {
			t.log.Warn("login throttle expire failed", slog.String("err", err.Error()))
		}
	}
}

// Reset 登入成功後清除計數
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	if err := t.cache.Del(ctx, throttleKey(email)).Err(); err != nil {
		t.log.Warn("login throttle reset failed", slog.String("err", err.Error()))
	}
}
