package notes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"focusflow/internal/api"
	"focusflow/internal/middleware"
	"focusflow/internal/model"
	"focusflow/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const userID = 7

func newCtx(method, target, body string, id int) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != 0 {
		c.SetPath("/notes/:id")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(id))
	}
	c.Set(middleware.ContextUserKey, &model.User{ID: userID})
	return c, rec
}

func fakeStore() *store.FakeStore {
	return &store.FakeStore{
		GetAreaFn: func(_ context.Context, id int) (*model.Area, error) {
			if id == 1 {
				return &model.Area{ID: 1, UserID: userID}, nil
			}
			return &model.Area{ID: id, UserID: 99}, nil
		},
		GetNoteFn: func(_ context.Context, id int) (*model.Note, error) {
			switch id {
			case 10:
				return &model.Note{ID: 10, Title: "mine", UserID: userID}, nil
			case 20:
				return &model.Note{ID: 20, Title: "theirs", UserID: 99}, nil
			}
			return nil, store.ErrNotFound
		},
	}
}

func TestCreateNoteHandler(t *testing.T) {
	s := fakeStore()
	s.CreateNoteFn = func(_ context.Context, n *model.Note) error {
		require.Equal(t, userID, n.UserID)
		n.ID = 11
		return nil
	}

	ctx, rec := newCtx(http.MethodPost, "/notes", `{"title":"Minutes","content":"agenda","area_id":1}`, 0)
	require.NoError(t, CreateNoteHandler(s)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"content":"agenda"`)

	ctx, rec = newCtx(http.MethodPost, "/notes", `{"title":"Minutes","area_id":5}`, 0)
	require.NoError(t, CreateNoteHandler(s)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	ctx, rec = newCtx(http.MethodPost, "/notes", `{"content":"untitled"}`, 0)
	require.NoError(t, CreateNoteHandler(s)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotesHandler(t *testing.T) {
	s := fakeStore()
	var filter store.NoteFilter
	s.ListNotesFn = func(_ context.Context, f store.NoteFilter) ([]model.Note, error) {
		filter = f
		return nil, nil
	}
	ctx, rec := newCtx(http.MethodGet, "/notes?offset=1", "", 0)
	require.NoError(t, ListNotesHandler(s)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
	require.Equal(t, store.NoteFilter{UserID: userID, Page: store.Page{Offset: 1, Limit: 100}}, filter)

	ctx, rec = newCtx(http.MethodGet, "/notes?area_id=4", "", 0)
	require.NoError(t, ListNotesHandler(s)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUpdateDeleteNote(t *testing.T) {
	s := fakeStore()
	s.UpdateNoteFn = func(_ context.Context, id int, p store.NotePatch) (*model.Note, error) {
		require.True(t, p.Content.Null)
		require.False(t, p.Title.Set)
		return &model.Note{ID: id, Title: "mine", UserID: userID}, nil
	}
	s.DeleteNoteFn = func(context.Context, int) error { return nil }

	ctx, rec := newCtx(http.MethodGet, "/notes/10", "", 10)
	require.NoError(t, GetNoteHandler(s)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, rec = newCtx(http.MethodGet, "/notes/20", "", 20)
	require.NoError(t, GetNoteHandler(s)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Note not found")

	ctx, rec = newCtx(http.MethodPatch, "/notes/10", `{"content":null}`, 10)
	require.NoError(t, UpdateNoteHandler(s)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"content":null`)

	ctx, rec = newCtx(http.MethodPatch, "/notes/10", `{"title":""}`, 10)
	require.NoError(t, UpdateNoteHandler(s)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, rec = newCtx(http.MethodDelete, "/notes/20", "", 20)
	require.NoError(t, DeleteNoteHandler(s)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	ctx, rec = newCtx(http.MethodDelete, "/notes/10", "", 10)
	require.NoError(t, DeleteNoteHandler(s)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}
