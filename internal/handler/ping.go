// File: internal/handler/ping.go
package handler

import (
	"context"
	"net/http"
	"time"

	"focusflow/internal/cache"
	"focusflow/internal/logging"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// Pinger 由 store.Store 實作
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取 (若有設定) 是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.HTTPError
// @Router      /ping [get]
func PingHandler(db Pinger, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			logging.FromContext(c).Error("ping database", "error", err)
			return Error(c, http.StatusInternalServerError, "database unhealthy")
		}
		if cch != nil {
			if err := cch.Set(ctx, "health:ping", "pong", time.Minute).Err(); err != nil {
				logging.FromContext(c).Error("ping cache", "error", err)
				return Error(c, http.StatusInternalServerError, "cache unhealthy")
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
