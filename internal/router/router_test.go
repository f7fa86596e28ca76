package router

import (
	"net/http"
	"testing"

	"focusflow/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{Store: &store.FakeStore{}})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/v1/ping",
		http.MethodPost + " /api/v1/users/register",
		http.MethodPost + " /api/v1/users/login",
		http.MethodGet + " /api/v1/users/me",
		http.MethodGet + " /api/v1/search",
	}
	for _, res := range []string{"areas", "tasks", "notes"} {
		expected = append(expected,
			http.MethodPost+" /api/v1/"+res,
			http.MethodGet+" /api/v1/"+res,
			http.MethodGet+" /api/v1/"+res+"/:id",
			http.MethodPatch+" /api/v1/"+res+"/:id",
			http.MethodDelete+" /api/v1/"+res+"/:id",
		)
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
