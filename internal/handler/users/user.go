package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"focusflow/internal/api"
	"focusflow/internal/handler"
	"focusflow/internal/logging"
	"focusflow/internal/middleware"
	"focusflow/internal/model"
	"focusflow/internal/service"
	"focusflow/internal/store"
	"focusflow/internal/worker"

	"github.com/labstack/echo/v4"
)

const (
	msgEmailTaken     = "The user with this username already exists in the system."
	msgBadCredentials = "Incorrect email or password"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	now              = time.Now
)

// TokenIssuer 由 *service.Tokens 實作
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// RegisterStore 註冊需要建立使用者與預設 area
type RegisterStore interface {
	store.Users
	CreateArea(ctx context.Context, a *model.Area) error
}

func tokenResponse(c echo.Context, tokens TokenIssuer, email string) error {
	token, expires, err := tokens.Issue(email)
	if err != nil {
		return handler.Internal(c, "issue token", err)
	}
	return c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   service.TokenType,
		ExpiresAt:   expires,
	})
}

// RegisterHandler 註冊新使用者並回傳存取令牌
// @Summary     Register a new user
// @Description 建立帳號 (Email 會自動轉小寫) 與預設的 "Work" area，回傳存取令牌
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "註冊資料"
// @Success     200  {object} api.TokenResponse
// @Failure     400  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /users/register [post]
func RegisterHandler(s RegisterStore, tokens TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		ctx := c.Request().Context()
		email := strings.ToLower(strings.TrimSpace(req.Email))

		_, err := s.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			return handler.Error(c, http.StatusBadRequest, msgEmailTaken)
		case !errors.Is(err, store.ErrNotFound):
			return handler.Internal(c, "lookup user", err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.Internal(c, "hash password", err)
		}

		user := &model.User{Email: email, FullName: req.FullName, HashedPassword: hash, LastLogin: now().UTC()}
		if err := s.CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				return handler.Error(c, http.StatusBadRequest, msgEmailTaken)
			}
			return handler.Internal(c, "create user", err)
		}

		// 第二次寫入；失敗時使用者已存在但沒有預設 area
		area := &model.Area{Name: model.DefaultAreaName, Color: model.DefaultAreaColor, UserID: user.ID}
		if err := s.CreateArea(ctx, area); err != nil {
			return handler.Internal(c, "create default area", err)
		}

		logging.FromContext(c).Info("user registered", "user_id", user.ID)
		return tokenResponse(c, tokens, user.Email)
	}
}

// LoginHandler 使用 OAuth2 password form 登入
// @Summary     Log in
// @Description 以 username (email) 與 password 驗證，回傳存取令牌
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.TokenResponse
// @Failure     400      {object} api.HTTPError
// @Failure     429      {object} api.HTTPError
// @Failure     500      {object} api.HTTPError
// @Router      /users/login [post]
func LoginHandler(users store.Users, tokens TokenIssuer, throttle *service.LoginThrottle, workers worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		ctx := c.Request().Context()
		email := strings.ToLower(strings.TrimSpace(req.Username))

		if err := throttle.Check(ctx, email); err != nil {
			return handler.Error(c, http.StatusTooManyRequests, "Too many failed login attempts, try again later")
		}

		user, err := users.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return handler.Internal(c, "lookup user", err)
		}
		if err := authenticateUser(user, req.Password); err != nil {
			throttle.Fail(ctx, email)
			return handler.Error(c, http.StatusBadRequest, msgBadCredentials)
		}
		throttle.Reset(ctx, email)

		if workers != nil {
			workers.Submit(touchLastLogin(users, user.ID, now().UTC(), logging.FromContext(c)))
		}
		return tokenResponse(c, tokens, user.Email)
	}
}

// touchLastLogin 在 worker 中更新 last_login，失敗只記錄
func touchLastLogin(users store.Users, userID int, at time.Time, log *slog.Logger) worker.Task {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := users.TouchLastLogin(ctx, userID, at); err != nil {
			log.Warn("update last_login failed", "user_id", userID, "error", err)
		}
	}
}

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 Bearer token 取得當前使用者資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return handler.Error(c, http.StatusUnauthorized, "Not authenticated")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
