package tasks

import (
	"net/http"

	"focusflow/internal/api"
	"focusflow/internal/handler"
	"focusflow/internal/middleware"
	"focusflow/internal/service"
	"focusflow/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgNotFound     = "Task not found"
	msgAreaNotFound = "Area not found"
)

// Store tasks 與其 area 參照檢查所需的資料存取
type Store interface {
	store.Tasks
	store.Areas
}

// CreateTaskHandler 建立 task，area_id 必須屬於當前使用者
// @Summary     Create task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateTaskRequest true "task"
// @Success     201  {object} api.TaskResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /tasks [post]
func CreateTaskHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTaskRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		userID := middleware.CurrentUser(c).ID
		if ok, err := handler.CheckArea(c, s, userID, req.AreaID); !ok {
			return err
		}
		task := req.Task(userID)
		if err := s.CreateTask(c.Request().Context(), task); err != nil {
			return handler.StoreError(c, "create task", err, msgAreaNotFound)
		}
		return c.JSON(http.StatusCreated, api.NewTaskResponse(task))
	}
}

// ListTasksHandler 列出當前使用者的 tasks，可依 area 過濾
// @Summary     List tasks
// @Tags        tasks
// @Produce     json
// @Param       offset  query    int false "略過筆數" default(0)
// @Param       limit   query    int false "最多筆數" default(100)
// @Param       area_id query    int false "只列出此 area"
// @Success     200     {array}  api.TaskResponse
// @Failure     400     {object} api.HTTPError
// @Failure     404     {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /tasks [get]
func ListTasksHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		q, err := handler.BindList(c)
		if err != nil {
			return handler.Error(c, http.StatusBadRequest, err.Error())
		}
		userID := middleware.CurrentUser(c).ID
		if ok, err := handler.CheckArea(c, s, userID, q.AreaID); !ok {
			return err
		}
		tasks, err := s.ListTasks(c.Request().Context(), store.TaskFilter{UserID: userID, AreaID: q.AreaID, Page: q.Page()})
		if err != nil {
			return handler.Internal(c, "list tasks", err)
		}
		return c.JSON(http.StatusOK, api.NewTaskResponses(tasks))
	}
}

// GetTaskHandler 取得單一 task
// @Summary     Get task
// @Tags        tasks
// @Produce     json
// @Param       id  path     int true "task id"
// @Success     200 {object} api.TaskResponse
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /tasks/{id} [get]
func GetTaskHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		task, err := service.LoadOwned(c.Request().Context(), s.GetTask, middleware.CurrentUser(c).ID, id)
		if err != nil {
			return handler.StoreError(c, "get task", err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.NewTaskResponse(task))
	}
}

// UpdateTaskHandler 部分更新 task；area_id 為 null 時解除關聯
// @Summary     Update task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "task id"
// @Param       body body     api.UpdateTaskRequest true "欲更新的欄位"
// @Success     200  {object} api.TaskResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /tasks/{id} [patch]
func UpdateTaskHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		var req api.UpdateTaskRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		ctx := c.Request().Context()
		userID := middleware.CurrentUser(c).ID
		if _, err := service.LoadOwned(ctx, s.GetTask, userID, id); err != nil {
			return handler.StoreError(c, "get task", err, msgNotFound)
		}
		if ok, err := handler.CheckArea(c, s, userID, req.AreaID.Ptr()); !ok {
			return err
		}
		task, err := s.UpdateTask(ctx, id, req.Patch())
		if err != nil {
			return handler.StoreError(c, "update task", err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.NewTaskResponse(task))
	}
}

// DeleteTaskHandler 刪除 task
// @Summary     Delete task
// @Tags        tasks
// @Produce     json
// @Param       id  path     int true "task id"
// @Success     200 {object} api.OKResponse
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /tasks/{id} [delete]
func DeleteTaskHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		ctx := c.Request().Context()
		if _, err := service.LoadOwned(ctx, s.GetTask, middleware.CurrentUser(c).ID, id); err != nil {
			return handler.StoreError(c, "get task", err, msgNotFound)
		}
		if err := s.DeleteTask(ctx, id); err != nil {
			return handler.StoreError(c, "delete task", err, msgNotFound)
		}
		return handler.OK(c)
	}
}
