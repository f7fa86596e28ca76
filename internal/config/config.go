// Package config 讀取環境變數 (可選 .env) 組成啟動設定
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env  string
	Addr string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PrivateKeyPath string
	PublicKeyPath  string
	TokenTTL       time.Duration

	WorkerCount int

	LoginMaxFailures int
	LoginLockout     time.Duration

	CORSOrigins []string
}

// loadEnvFile 測試可覆寫
var loadEnvFile = func() error { return godotenv.Load() }

// Load 讀取設定；.env 不存在時略過，已存在的環境變數優先
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("載入 .env 失敗: %w", err)
	}

	cfg := Config{
		Env:            getenv("APP_ENV", EnvLocal),
		Addr:           getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		PrivateKeyPath: getenv("JWT_PRIVATE_KEY", "keys/private.pem"),
		PublicKeyPath:  getenv("JWT_PUBLIC_KEY", "keys/public.pem"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "*")),
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return Config{}, fmt.Errorf("無效的 APP_ENV: %q", cfg.Env)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("環境變數 DATABASE_URL 未設定")
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0, 0); err != nil {
		return Config{}, err
	}
	ttlHours, err := intEnv("TOKEN_TTL_HOURS", 168, 1)
	if err != nil {
		return Config{}, err
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 1, 1); err != nil {
		return Config{}, err
	}
	if cfg.LoginMaxFailures, err = intEnv("LOGIN_MAX_FAILURES", 5, 0); err != nil {
		return Config{}, err
	}
	lockout, err := intEnv("LOGIN_LOCKOUT_MINUTES", 15, 1)
	if err != nil {
		return Config{}, err
	}
	cfg.LoginLockout = time.Duration(lockout) * time.Minute

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intEnv 讀取整數，小於 min 視為錯誤
func intEnv(key string, def, min int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %w", key, err)
	}
	if n < min {
		return 0, fmt.Errorf("無效的 %s: 必須 >= %d", key, min)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
