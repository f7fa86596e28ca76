package search

import (
	"net/http"

	"focusflow/internal/api"
	"focusflow/internal/handler"
	"focusflow/internal/middleware"
	"focusflow/internal/service"

	"github.com/labstack/echo/v4"
)

// SearchHandler 以子字串搜尋當前使用者的 tasks 與 notes
// @Summary     Search tasks and notes
// @Description tasks 先填滿 limit，剩餘名額給 notes；每筆結果帶 type 欄位
// @Tags        search
// @Produce     json
// @Param       query     query    string true  "搜尋字串 (不分大小寫)"
// @Param       item_type query    string false "task 或 note" Enums(task, note)
// @Param       limit     query    int    false "最多筆數" default(10)
// @Success     200       {array}  api.TaskSearchResult
// @Failure     400       {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /search [get]
func SearchHandler(s service.SearchStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := api.NewSearchQuery()
		err := echo.QueryParamsBinder(c).
			String("query", &q.Query).
			String("item_type", &q.ItemType).
			Int("limit", &q.Limit).
			BindError()
		if err != nil {
			return handler.Error(c, http.StatusBadRequest, err.Error())
		}
		if err := c.Validate(&q); err != nil {
			return handler.Error(c, http.StatusBadRequest, err.Error())
		}

		hits, err := service.Search(c.Request().Context(), s, middleware.CurrentUser(c).ID, q.Params())
		if err != nil {
			return handler.Internal(c, "search", err)
		}
		return c.JSON(http.StatusOK, api.NewSearchResults(hits))
	}
}
