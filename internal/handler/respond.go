package handler

import (
	"errors"
	"net/http"
	"strconv"

	"focusflow/internal/api"
	"focusflow/internal/logging"
	"focusflow/internal/service"
	"focusflow/internal/store"

	"github.com/labstack/echo/v4"
)

// Error 回傳 {"message": msg}
func Error(c echo.Context, status int, msg string) error {
	return c.JSON(status, api.HTTPError{Message: msg})
}

// Internal 記錄錯誤後回傳一般化的 500 訊息
func Internal(c echo.Context, op string, err error) error {
	logging.FromContext(c).Error(op, "error", err)
	return Error(c, http.StatusInternalServerError, "internal server error")
}

// StoreError 將 store 的 sentinel 錯誤轉為對應狀態碼
// notFound 為 404 時的訊息，例如 "Task not found"
func StoreError(c echo.Context, op string, err error, notFound string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return Error(c, http.StatusNotFound, notFound)
	default:
		return Internal(c, op, err)
	}
}

// Bind 綁定並驗證請求，失敗時已寫出 400
func Bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, Error(c, http.StatusBadRequest, "無效的請求資料")
	}
	if err := c.Validate(req); err != nil {
		return false, Error(c, http.StatusBadRequest, err.Error())
	}
	return true, nil
}

// PathID 解析路徑上的 :id
func PathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// BindList 解析 offset、limit 與 area_id，未提供時使用預設值
func BindList(c echo.Context) (api.ListQuery, error) {
	q := api.NewListQuery()
	var areaID int
	err := echo.QueryParamsBinder(c).
		Int("offset", &q.Offset).
		Int("limit", &q.Limit).
		Int("area_id", &areaID).
		BindError()
	if err != nil {
		return q, err
	}
	if c.QueryParam("area_id") != "" {
		q.AreaID = &areaID
	}
	return q, c.Validate(&q)
}

// OK 刪除成功的回應
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, api.OKResponse{OK: true})
}

// InvalidID 路徑 id 不是正整數
func InvalidID(c echo.Context) error {
	return Error(c, http.StatusBadRequest, "Invalid id")
}

// CheckArea areaID 不存在或不屬於使用者時寫出 404 "Area not found"
func CheckArea(c echo.Context, areas store.Areas, userID int, areaID *int) (bool, error) {
	err := service.CheckArea(c.Request().Context(), areas, userID, areaID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, Error(c, http.StatusNotFound, "Area not found")
	}
	return false, Internal(c, "check area", err)
}
