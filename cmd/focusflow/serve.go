package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"focusflow/internal/api"
	"focusflow/internal/cache"
	"focusflow/internal/config"
	"focusflow/internal/database"
	"focusflow/internal/logging"
	"focusflow/internal/router"
	"focusflow/internal/service"
	"focusflow/internal/store"
	"focusflow/internal/store/postgres"
	"focusflow/internal/store/sqlite"
	"focusflow/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	_ "focusflow/docs" // 註冊 swagger 文件

	echoSwagger "github.com/swaggo/echo-swagger"
)

// 測試可覆寫
var (
	loadConfig      = config.Load
	loadTokens      = service.LoadTokens
	newPgxPool      = database.NewPgxPool
	openSQLite      = func(dsn string) (store.Store, error) { return sqlite.Open(dsn) }
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }

	logOutput io.Writer = os.Stdout
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}

// openStore DATABASE_URL 為 SQLite 時使用 GORM，否則先執行 migration 再連 Postgres
func openStore(ctx context.Context, dbURL string) (store.Store, error) {
	if sqlite.IsDSN(dbURL) {
		s, err := openSQLite(dbURL)
		if err != nil {
			return nil, fmt.Errorf("SQLite 開啟失敗: %w", err)
		}
		return s, nil
	}
	if err := runMigrationsFn(dbURL); err != nil {
		return nil, fmt.Errorf("Migration 執行失敗: %w", err)
	}
	db, err := newPgxPool(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("DB 連線失敗: %w", err)
	}
	return postgres.New(db), nil
}

func newEcho(cfg config.Config, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logging.Inject(log))
	e.Use(logging.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	return e
}

func run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Env, logOutput)
	slog.SetDefault(log)

	tokens, err := loadTokens(cfg.PrivateKeyPath, cfg.PublicKeyPath, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("載入 JWT 金鑰失敗: %w", err)
	}

	st, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("關閉資料庫失敗", "error", err)
		}
	}()

	var cch cache.Cache
	if cfg.RedisAddr != "" {
		cch, err = newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer cch.Close()
	} else {
		log.Info("REDIS_ADDR 未設定，停用快取與登入限制")
	}

	wp := newWorkerPool(cfg.WorkerCount, log)
	defer wp.Stop()

	e := newEcho(cfg, log)
	router.Setup(e, router.Deps{
		Store:    st,
		Cache:    cch,
		Tokens:   tokens,
		Throttle: service.NewLoginThrottle(cch, cfg.LoginMaxFailures, cfg.LoginLockout, log),
		Workers:  wp,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info("server starting", "addr", cfg.Addr, "env", cfg.Env)
	if err := startServer(e, cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
