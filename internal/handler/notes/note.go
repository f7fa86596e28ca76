package notes

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
	msgNotFound     = "Note not found"
	msgAreaNotFound = "Area not found"
)

// Store notes 與其 area 參照檢查所需的資料存取
type Store interface {
	store.Notes
	store.Areas
}

// CreateNoteHandler 建立 note，area_id 必須屬於當前使用者
// @Summary     Create note
// @Tags        notes
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateNoteRequest true "note"
// @Success     201  {object} api.NoteResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /notes [post]
func CreateNoteHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateNoteRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		userID := middleware.CurrentUser(c).ID
		if ok, err := handler.CheckArea(c, s, userID, req.AreaID); !ok {
			return err
		}
		note := req.Note(userID)
		if err := s.CreateNote(c.Request().Context(), note); err != nil {
			return handler.StoreError(c, "create note", err, msgAreaNotFound)
		}
		return c.JSON(http.StatusCreated, api.NewNoteResponse(note))
	}
}

// ListNotesHandler 列出當前使用者的 notes (依更新時間由新到舊)，可依 area 過濾
// @Summary     List notes
// @Tags        notes
// @Produce     json
// @Param       offset  query    int false "略過筆數" default(0)
// @Param       limit   query    int false "最多筆數" default(100)
// @Param       area_id query    int false "只列出此 area"
// @Success     200     {array}  api.NoteResponse
// @Failure     400     {object} api.HTTPError
// @Failure     404     {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /notes [get]
func ListNotesHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		q, err := handler.BindList(c)
		if err != nil {
			return handler.Error(c, http.StatusBadRequest, err.Error())
		}
		userID := middleware.CurrentUser(c).ID
		if ok, err := handler.CheckArea(c, s, userID, q.AreaID); !ok {
			return err
		}
		notes, err := s.ListNotes(c.Request().Context(), store.NoteFilter{UserID: userID, AreaID: q.AreaID, Page: q.Page()})
		if err != nil {
			return handler.Internal(c, "list notes", err)
		}
		return c.JSON(http.StatusOK, api.NewNoteResponses(notes))
	}
}

// GetNoteHandler 取得單一 note
// @Summary     Get note
// @Tags        notes
// @Produce     json
// @Param       id  path     int true "note id"
// @Success     200 {object} api.NoteResponse
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /notes/{id} [get]
func GetNoteHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		note, err := service.LoadOwned(c.Request().Context(), s.GetNote, middleware.CurrentUser(c).ID, id)
		if err != nil {
			return handler.StoreError(c, "get note", err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.NewNoteResponse(note))
	}
}

// UpdateNoteHandler 部分更新 note；area_id 為 null 時解除關聯
// @Summary     Update note
// @Tags        notes
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "note id"
// @Param       body body     api.UpdateNoteRequest true "欲更新的欄位"
// @Success     200  {object} api.NoteResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /notes/{id} [patch]
func UpdateNoteHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		var req api.UpdateNoteRequest
		if ok, err := handler.Bind(c, &req); !ok {
			return err
		}
		ctx := c.Request().Context()
		userID := middleware.CurrentUser(c).ID
		if _, err := service.LoadOwned(ctx, s.GetNote, userID, id); err != nil {
			return handler.StoreError(c, "get note", err, msgNotFound)
		}
		if ok, err := handler.CheckArea(c, s, userID, req.AreaID.Ptr()); !ok {
			return err
		}
		note, err := s.UpdateNote(ctx, id, req.Patch())
		if err != nil {
			return handler.StoreError(c, "update note", err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.NewNoteResponse(note))
	}
}

// DeleteNoteHandler 刪除 note
// @Summary     Delete note
// @Tags        notes
// @Produce     json
// @Param       id  path     int true "note id"
// @Success     200 {object} api.OKResponse
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /notes/{id} [delete]
func DeleteNoteHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c)
		if !ok {
			return handler.InvalidID(c)
		}
		ctx := c.Request().Context()
		if _, err := service.LoadOwned(ctx, s.GetNote, middleware.CurrentUser(c).ID, id); err != nil {
			return handler.StoreError(c, "get note", err, msgNotFound)
		}
		if err := s.DeleteNote(ctx, id); err != nil {
			return handler.StoreError(c, "delete note", err, msgNotFound)
		}
		return handler.OK(c)
	}
}
