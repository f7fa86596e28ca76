package api

import (
	"encoding/json"
	"testing"

	"focusflow/internal/model"
	"focusflow/internal/service"
	"focusflow/internal/store"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	cv := NewValidator()
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestCreateUserRequestValidation(t *testing.T) {
	cv := NewValidator()
	ok := CreateUserRequest{Email: "a@b.co", FullName: "A", Password: "pw"}
	require.NoError(t, cv.Validate(&ok))

	bad := ok
	bad.Email = "not-an-email"
	require.Error(t, cv.Validate(&bad))

	long := ok
	long.Password = string(make([]byte, 73))
	require.Error(t, cv.Validate(&long))
}

func decodeInto(t *testing.T, body string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v))
}

func TestUpdateTaskRequestValidate(t *testing.T) {
	cv := NewValidator()
	cases := []struct {
		body    string
		wantErr bool
	}{
		{`{}`, false},
		{`{"title":"new"}`, false},
		{`{"description":null,"due_date":null,"area_id":null}`, false},
		{`{"priority":"High","completed":true}`, false},
		{`{"title":null}`, true},
		{`{"title":"  "}`, true},
		{`{"completed":null}`, true},
		{`{"priority":null}`, true},
		{`{"priority":"Urgent"}`, true},
	}
	for _, tc := range cases {
		var req UpdateTaskRequest
		decodeInto(t, tc.body, &req)
		err := cv.Validate(&req)
		if tc.wantErr {
			require.Error(t, err, tc.body)
		} else {
			require.NoError(t, err, tc.body)
		}
	}
}

func TestUpdateTaskRequestPatch(t *testing.T) {
	var req UpdateTaskRequest
	decodeInto(t, `{"title":"x","area_id":null}`, &req)
	p := req.Patch()
	require.True(t, p.Title.HasValue())
	require.Equal(t, "x", p.Title.Value)
	require.True(t, p.AreaID.Set)
	require.True(t, p.AreaID.Null)
	require.False(t, p.Description.Set)
	require.False(t, p.Priority.Set)
}

func TestUpdateAreaAndNoteValidate(t *testing.T) {
	cv := NewValidator()

	var area UpdateAreaRequest
	decodeInto(t, `{"color":""}`, &area)
	require.Error(t, cv.Validate(&area))

	area = UpdateAreaRequest{}
	decodeInto(t, `{"name":"Home"}`, &area)
	require.NoError(t, cv.Validate(&area))
	require.Equal(t, store.AreaPatch{Name: area.Name}, area.Patch())

	var note UpdateNoteRequest
	decodeInto(t, `{"title":null}`, &note)
	require.Error(t, cv.Validate(&note))

	note = UpdateNoteRequest{}
	decodeInto(t, `{"content":null}`, &note)
	require.NoError(t, cv.Validate(&note))
	require.True(t, note.Patch().Content.Null)
}

func TestCreateTaskRequestDefaults(t *testing.T) {
	cv := NewValidator()
	req := CreateTaskRequest{Title: "t"}
	require.NoError(t, cv.Validate(&req))
	task := req.Task(9)
	require.Equal(t, model.PriorityMedium, task.Priority)
	require.Equal(t, 9, task.UserID)

	req.Priority = "Urgent"
	require.Error(t, cv.Validate(&req))
}

func TestListQueryPage(t *testing.T) {
	q := NewListQuery()
	require.Equal(t, store.Page{Offset: 0, Limit: store.DefaultLimit}, q.Page())

	cv := NewValidator()
	q.Offset = -1
	require.Error(t, cv.Validate(&q))
	q = NewListQuery()
	q.Limit = 0
	require.Error(t, cv.Validate(&q))
}

func TestSearchQueryValidation(t *testing.T) {
	cv := NewValidator()
	q := NewSearchQuery()
	require.Error(t, cv.Validate(&q), "query is required")

	q.Query = "report"
	require.NoError(t, cv.Validate(&q))
	require.Equal(t, service.SearchParams{Query: "report", Limit: service.DefaultSearchLimit}, q.Params())

	q.ItemType = "event"
	require.Error(t, cv.Validate(&q))
	q.ItemType = "note"
	q.Limit = 0
	require.Error(t, cv.Validate(&q))
}

func TestNewSearchResults(t *testing.T) {
	desc := "d"
	hits := []service.SearchHit{
		{Type: service.ItemTask, Task: &model.Task{ID: 1, Title: "t", Description: &desc, Priority: model.PriorityHigh}},
		{Type: service.ItemNote, Note: &model.Note{ID: 2, Title: "n"}},
	}
	out := NewSearchResults(hits)
	require.Len(t, out, 2)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"id":1,"title":"t","description":"d","priority":"High","due_date":null,"type":"task"},
		{"id":2,"title":"n","content":null,"type":"note"}
	]`, string(raw))
}

func TestUserResponseOmitsPassword(t *testing.T) {
	raw, err := json.Marshal(NewUserResponse(&model.User{ID: 1, Email: "a@b.co", HashedPassword: "secret"}))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret")
	require.NotContains(t, string(raw), "last_login")
}
