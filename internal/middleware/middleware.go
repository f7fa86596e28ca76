package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"focusflow/internal/logging"
	"focusflow/internal/model"
	"focusflow/internal/service"
	"focusflow/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier 由 *service.Tokens 實作
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// UserFinder 以 token subject (email) 查詢使用者
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], service.TokenType) || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth 驗證 Bearer token 並將 *model.User 放進 context
func RequireAuth(tokens TokenVerifier, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, service.TokenType)
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			claims, err := tokens.Verify(raw)
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, service.TokenType)
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}
			if claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
			}

			user, err := users.GetUserByEmail(c.Request().Context(), claims.Subject)
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "User not found")
			}
			if err != nil {
				logging.FromContext(c).Error("load current user", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 回傳 RequireAuth 放入的使用者；未經 RequireAuth 時為 nil
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}
