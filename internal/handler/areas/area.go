package areas

import (
	"net/http"

	"focusflow/internal/api"
	"focusflow/internal/handler"
	"focusflow/internal/middleware"
	"focusflow/internal/service"
	"focusflow/internal/store"

	"github.com/labstack/echo/v4"
)

const msgNotFound = "Area not found"

// CreateAreaHandler 建立 area
// @Summary     Create area
// @Tags        areas
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateAreaRequest true "area"
// @Success     201  {object} api.AreaResponse
// @Failure     400  {object} api.HTTPError
// @Failure     401  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /areas [post]
func CreateAreaHandler(s store.Areas) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAreaRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		area := req.Area(middleware.CurrentUser(c).ID)
		if err := s.CreateArea(c.Request().Context(), area); err != nil {
			return handler.Internal(c, "create area", err)
		}
		return c.JSON(http.StatusCreated, api.NewAreaResponse(area))
	}
}

// ListAreasHandler 列出當前使用者的 areas
// @Summary     List areas
// @Tags        areas
// @Produce     json
// @Param       offset query    int false "略過筆數" default(0)
// @Param       limit  query    int false "最多筆數" default(100)
// @Success     200    {array}  api.AreaResponse
// @Failure     400    {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /areas [get]
func ListAreasHandler(s store.Areas) echo.HandlerFunc {
	return func(c echo.Context) error {
		q, err := handler.BindList(c)
		if err != nil {
			return handler.Error(c, http.StatusBadRequest, err.Error())
		}
		areas, err := s.ListAreas(c.Request().Context(), middleware.CurrentUser(c).ID, q.Page())
		if err != nil {
			return handler.Internal(c, "list areas", err)
		}
		return c.JSON(http.StatusOK, api.NewAreaResponses(areas))
	}
}

// GetAreaHandler 取得單一 area
// @Summary     Get area
// @Tags        areas
// @Produce     json
// @Param       id  path     int true "area id"
// @Success     200 {object} api.AreaResponse
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /areas/{id} [get]
func GetAreaHandler(s store.Areas) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		area, err := service.LoadOwned(c.Request().Context(), s.GetArea, middleware.CurrentUser(c).ID, id)
		if err != nil {
			return handler.StoreError(c, "get area", err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.NewAreaResponse(area))
	}
}

// UpdateAreaHandler 部分更新 area，只更新有出現的欄位
// @Summary     Update area
// @Tags        areas
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "area id"
// @Param       body body     api.UpdateAreaRequest true "欲更新的欄位"
// @Success     200  {object} api.AreaResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /areas/{id} [patch]
func UpdateAreaHandler(s store.Areas) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		var req api.UpdateAreaRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		ctx := c.Request().Context()
		if _, err := service.LoadOwned(ctx, s.GetArea, middleware.CurrentUser(c).ID, id); err != nil {
			return handler.StoreError(c, "get area", err, msgNotFound)
		}
		area, err := s.UpdateArea(ctx, id, req.Patch())
		if err != nil {
			return handler.StoreError(c, "update area", err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.NewAreaResponse(area))
	}
}

// DeleteAreaHandler 刪除 area，原本屬於它的 task 與 note 保留並變成未分類
// @Summary     Delete area
// @Tags        areas
// @Produce     json
// @Param       id  path     int true "area id"
// @Success     200 {object} api.OKResponse
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /areas/{id} [delete]
func DeleteAreaHandler(s store.Areas) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		ctx := c.Request().Context()
		if _, err := service.LoadOwned(ctx, s.GetArea, middleware.CurrentUser(c).ID, id); err != nil {
			return handler.StoreError(c, "get area", err, msgNotFound)
		}
		if err := s.DeleteArea(ctx, id); err != nil {
			return handler.StoreError(c, "delete area", err, msgNotFound)
		}
		return handler.OK(c)
	}
}
