package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"focusflow/internal/database"
	"focusflow/internal/model"
	"focusflow/internal/patch"
	"focusflow/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func rowFn(r pgx.Row, gotSQL *string, gotArgs *[]any) func(context.Context, string, ...any) pgx.Row {
	return func(_ context.Context, sql string, args ...any) pgx.Row {
		if gotSQL != nil {
			*gotSQL = sql
		}
		if gotArgs != nil {
			*gotArgs = args
		}
		return r
	}
}

func TestWrap(t *testing.T) {
	require.ErrorIs(t, wrap("GetTask", pgx.ErrNoRows), store.ErrNotFound)
	require.ErrorIs(t, wrap("CreateTask", &pgconn.PgError{Code: codeForeignKeyViolation}), store.ErrNotFound)

	err := wrap("ListNotes", errors.New("boom"))
	require.EqualError(t, err, "ListNotes: boom")
	require.NotErrorIs(t, err, store.ErrNotFound)
}

func TestSetBuilder(t *testing.T) {
	var b setBuilder
	b.add("title", "x")
	b.add("area_id", nil)
	sql, args := b.build("tasks", 7, "id")
	require.Equal(t, `UPDATE tasks SET title = $1, area_id = $2, updated_at = now() WHERE id = $3 RETURNING id`, sql)
	require.Equal(t, []any{"x", nil, 7}, args)

	var empty setBuilder
	sql, args = empty.build("areas", 1, "id")
	require.Equal(t, `UPDATE areas SET updated_at = now() WHERE id = $1 RETURNING id`, sql)
	require.Equal(t, []any{1}, args)
}

func TestPingClose(t *testing.T) {
	closed := false
	s := New(&database.FakeDB{
		PingFn:  func(context.Context) error { return errors.New("down") },
		CloseFn: func() { closed = true },
	})
	require.EqualError(t, s.Ping(context.Background()), "down")
	require.NoError(t, s.Close())
	require.True(t, closed)
}

/* ---------- users ---------- */

func TestUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("create ok", func(t *testing.T) {
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: []any{3, now, now}}, nil, &args)})
		u := &model.User{Email: "a@b.com", FullName: "A", HashedPassword: "h", LastLogin: now}
		require.NoError(t, s.CreateUser(ctx, u))
		require.Equal(t, 3, u.ID)
		require.Equal(t, now, u.CreatedAt)
		require.Equal(t, []any{"a@b.com", "A", "h", now}, args)
	})

	t.Run("create duplicate", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{scanErr: &pgconn.PgError{Code: codeUniqueViolation}}, nil, nil)})
		err := s.CreateUser(ctx, &model.User{})
		require.ErrorIs(t, err, store.ErrEmailTaken)
	})

	t.Run("get by email", func(t *testing.T) {
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: []any{1, "a@b.com", "A", "h", now, now, now}}, nil, &args)})
		u, err := s.GetUserByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		require.Equal(t, "A", u.FullName)
		require.Equal(t, "h", u.HashedPassword)
		require.Equal(t, []any{"a@b.com"}, args)
	})

	t.Run("get by email missing", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{scanErr: pgx.ErrNoRows}, nil, nil)})
		_, err := s.GetUserByEmail(ctx, "x@y.z")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("touch last login", func(t *testing.T) {
		affected := "UPDATE 1"
		s := New(&database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, "UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2", sql)
			require.Equal(t, []any{now, 5}, args)
			return pgconn.NewCommandTag(affected), nil
		}})
		require.NoError(t, s.TouchLastLogin(ctx, 5, now))
		affected = "UPDATE 0"
		require.ErrorIs(t, s.TouchLastLogin(ctx, 5, now), store.ErrNotFound)
	})

	t.Run("touch last login error", func(t *testing.T) {
		s := New(&database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("conn")
		}})
		require.EqualError(t, s.TouchLastLogin(ctx, 5, now), "TouchLastLogin: conn")
	})
}

/* ---------- areas ---------- */

func areaValues(id, userID int, name string) []any {
	return []any{id, name, "bg-blue-500", userID, now, now}
}

func TestAreas(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: []any{8, now, now}}, nil, nil)})
		a := &model.Area{Name: "Work", Color: "bg-blue-500", UserID: 1}
		require.NoError(t, s.CreateArea(ctx, a))
		require.Equal(t, 8, a.ID)
	})

	t.Run("get", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: areaValues(2, 1, "Home")}, nil, nil)})
		a, err := s.GetArea(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, "Home", a.Name)
		require.Equal(t, 1, a.OwnerID())

		s = New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{scanErr: pgx.ErrNoRows}, nil, nil)})
		_, err = s.GetArea(ctx, 2)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{areaValues(1, 4, "A"), areaValues(2, 4, "B")}}
		s := New(&database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "WHERE user_id = $1")
			require.Equal(t, []any{4, 0, store.DefaultLimit}, args)
			return rows, nil
		}})
		areas, err := s.ListAreas(ctx, 4, store.Page{})
		require.NoError(t, err)
		require.Len(t, areas, 2)
		require.True(t, rows.closed)
	})

	t.Run("list errors", func(t *testing.T) {
		s := New(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("q")
		}})
		_, err := s.ListAreas(ctx, 4, store.Page{})
		require.Error(t, err)

		s = New(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{areaValues(1, 4, "A")}, scanErr: errors.New("scan")}, nil
		}})
		_, err = s.ListAreas(ctx, 4, store.Page{})
		require.Error(t, err)

		s = New(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{err: errors.New("iter")}, nil
		}})
		_, err = s.ListAreas(ctx, 4, store.Page{})
		require.EqualError(t, err, "ListAreas: iter")
	})

	t.Run("update only present fields", func(t *testing.T) {
		var sql string
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: areaValues(2, 1, "Renamed")}, &sql, &args)})
		a, err := s.UpdateArea(ctx, 2, store.AreaPatch{Name: patch.Of("Renamed")})
		require.NoError(t, err)
		require.Equal(t, "Renamed", a.Name)
		require.Contains(t, sql, "SET name = $1, updated_at = now() WHERE id = $2")
		require.NotContains(t, sql, "color =")
		require.Equal(t, []any{"Renamed", 2}, args)
	})

	t.Run("delete", func(t *testing.T) {
		tag := pgconn.NewCommandTag("DELETE 1")
		var execErr error
		s := New(&database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "UPDATE tasks SET area_id = NULL, updated_at = now() WHERE area_id = $1")
			require.Contains(t, sql, "UPDATE notes SET area_id = NULL, updated_at = now() WHERE area_id = $1")
			require.True(t, strings.HasSuffix(sql, "DELETE FROM areas WHERE id = $1"))
			require.Equal(t, []any{2}, args)
			return tag, execErr
		}})
		require.NoError(t, s.DeleteArea(ctx, 2))

		tag = pgconn.NewCommandTag("DELETE 0")
		require.ErrorIs(t, s.DeleteArea(ctx, 2), store.ErrNotFound)

		execErr = errors.New("conn reset")
		require.ErrorContains(t, s.DeleteArea(ctx, 2), "DeleteArea: conn reset")
	})
}

/* ---------- tasks ---------- */

func taskValues(id int, title string, completed bool, prio model.Priority, due *string) []any {
	var dueVal any
	if due != nil {
		dueVal = due
	}
	return []any{id, title, strp("desc"), dueVal, completed, prio, intp(1), 9, now, now}
}

func TestTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults priority", func(t *testing.T) {
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: []any{1, now, now}}, nil, &args)})
		task := &model.Task{Title: "t", UserID: 9}
		require.NoError(t, s.CreateTask(ctx, task))
		require.Equal(t, model.PriorityMedium, task.Priority)
		require.Equal(t, model.PriorityMedium, args[4])
	})

	t.Run("create with vanished area", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{scanErr: &pgconn.PgError{Code: codeForeignKeyViolation}}, nil, nil)})
		require.ErrorIs(t, s.CreateTask(ctx, &model.Task{Title: "t"}), store.ErrNotFound)
	})

	t.Run("get", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: taskValues(4, "t", false, model.PriorityHigh, strp("2026-01-01"))}, nil, nil)})
		task, err := s.GetTask(ctx, 4)
		require.NoError(t, err)
		require.Equal(t, model.PriorityHigh, task.Priority)
		require.Equal(t, "2026-01-01", *task.DueDate)
		require.Equal(t, 1, *task.AreaID)
	})

	t.Run("list with area filter", func(t *testing.T) {
		s := New(&database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "WHERE user_id = $1 AND area_id = $2 ORDER BY id OFFSET $3 LIMIT $4")
			require.Equal(t, []any{9, 1, 10, 5}, args)
			return &fakeRows{data: [][]any{taskValues(1, "a", false, model.PriorityLow, nil)}}, nil
		}})
		tasks, err := s.ListTasks(ctx, store.TaskFilter{UserID: 9, AreaID: intp(1), Page: store.Page{Offset: 10, Limit: 5}})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Nil(t, tasks[0].DueDate)
	})

	t.Run("list without filter", func(t *testing.T) {
		s := New(&database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "WHERE user_id = $1 ORDER BY id OFFSET $2 LIMIT $3")
			require.Equal(t, []any{9, 0, 100}, args)
			return &fakeRows{}, nil
		}})
		tasks, err := s.ListTasks(ctx, store.TaskFilter{UserID: 9})
		require.NoError(t, err)
		require.NotNil(t, tasks)
		require.Empty(t, tasks)
	})

	t.Run("update completed only", func(t *testing.T) {
		var sql string
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: taskValues(4, "t", true, model.PriorityHigh, nil)}, &sql, &args)})
		task, err := s.UpdateTask(ctx, 4, store.TaskPatch{Completed: patch.Of(true)})
		require.NoError(t, err)
		require.True(t, task.Completed)
		require.Contains(t, sql, "SET completed = $1, updated_at = now() WHERE id = $2")
		for _, col := range []string{"title =", "description =", "due_date =", "priority =", "area_id ="} {
			require.NotContains(t, sql, col)
		}
		require.Equal(t, []any{true, 4}, args)
	})

	t.Run("update clears nullable fields", func(t *testing.T) {
		var sql string
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: taskValues(4, "t", false, model.PriorityLow, nil)}, &sql, &args)})
		_, err := s.UpdateTask(ctx, 4, store.TaskPatch{
			Description: patch.Null[string](),
			AreaID:      patch.Null[int](),
			Priority:    patch.Of(model.PriorityLow),
		})
		require.NoError(t, err)
		require.Contains(t, sql, "SET description = $1, priority = $2, area_id = $3, updated_at = now() WHERE id = $4")
		require.Nil(t, args[0])
		require.Equal(t, model.PriorityLow, args[1])
		require.Nil(t, args[2])
	})

	t.Run("update missing", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{scanErr: pgx.ErrNoRows}, nil, nil)})
		_, err := s.UpdateTask(ctx, 4, store.TaskPatch{Title: patch.Of("x")})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := New(&database.FakeDB{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			require.Equal(t, "DELETE FROM tasks WHERE id = $1", sql)
			return pgconn.NewCommandTag("DELETE 1"), nil
		}})
		require.NoError(t, s.DeleteTask(ctx, 4))
	})

	t.Run("search escapes pattern", func(t *testing.T) {
		s := New(&database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.True(t, strings.Contains(sql, "title ILIKE $2") && strings.Contains(sql, "description ILIKE $2"))
			require.Equal(t, []any{9, `%50\%%`}, args)
			return &fakeRows{data: [][]any{taskValues(1, "50% off", false, model.PriorityMedium, nil)}}, nil
		}})
		tasks, err := s.SearchTasks(ctx, 9, "50%")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
	})
}

/* ---------- notes ---------- */

func noteValues(id int, title string) []any {
	return []any{id, title, strp("body"), nil, 9, now, now}
}

func TestNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: []any{5, now, now}}, nil, &args)})
		n := &model.Note{Title: "n", UserID: 9}
		require.NoError(t, s.CreateNote(ctx, n))
		require.Equal(t, 5, n.ID)
		require.Len(t, args, 4)
	})

	t.Run("get", func(t *testing.T) {
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: noteValues(5, "n")}, nil, nil)})
		n, err := s.GetNote(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, "body", *n.Content)
		require.Nil(t, n.AreaID)
	})

	t.Run("list ordered by updated_at", func(t *testing.T) {
		s := New(&database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY updated_at DESC")
			require.Equal(t, []any{9, 3, 0, 100}, args)
			return &fakeRows{data: [][]any{noteValues(1, "a"), noteValues(2, "b")}}, nil
		}})
		notes, err := s.ListNotes(ctx, store.NoteFilter{UserID: 9, AreaID: intp(3)})
		require.NoError(t, err)
		require.Len(t, notes, 2)
	})

	t.Run("update content and area", func(t *testing.T) {
		var sql string
		var args []any
		s := New(&database.FakeDB{QueryRowFn: rowFn(&fakeRow{values: noteValues(5, "n")}, &sql, &args)})
		_, err := s.UpdateNote(ctx, 5, store.NotePatch{Content: patch.Of("x"), AreaID: patch.Of(3)})
		require.NoError(t, err)
		require.Contains(t, sql, "SET content = $1, area_id = $2, updated_at = now() WHERE id = $3")
		require.Equal(t, "x", *args[0].(*string))
		require.Equal(t, 3, *args[1].(*int))
	})

	t.Run("delete missing", func(t *testing.T) {
		s := New(&database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}})
		require.ErrorIs(t, s.DeleteNote(ctx, 5), store.ErrNotFound)
	})

	t.Run("search", func(t *testing.T) {
		s := New(&database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "content ILIKE $2")
			require.Equal(t, "%milk%", args[1])
			return nil, errors.New("q")
		}})
		_, err := s.SearchNotes(ctx, 9, "milk")
		require.EqualError(t, err, "SearchNotes: q")
	})
}
