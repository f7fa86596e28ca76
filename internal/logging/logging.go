// Package logging builds the process logger and the Echo request logger.
package logging

import (
	"io"
	"log/slog"

	"focusflow/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New 依環境建立 logger：local 用文字格式，dev/prod 用 JSON
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// RequestLogger 將每個請求記錄到 slog
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			}
			if v.Status >= 500 {
				level = slog.LevelError
			}
			log.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// FromContext 取出請求層級 logger，沒有時回傳 slog.Default()
func FromContext(c echo.Context) *slog.Logger {
	if l, ok := c.Get(contextKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

const contextKey = "logger"

// Inject 將帶 request_id 的 logger 放入 context
func Inject(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			c.Set(contextKey, log.With(slog.String("request_id", id)))
			return next(c)
		}
	}
}
