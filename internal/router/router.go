// File: internal/router/router.go
package router

import (
	"focusflow/internal/cache"
	"focusflow/internal/handler"
	"focusflow/internal/handler/areas"
	"focusflow/internal/handler/notes"
	"focusflow/internal/handler/search"
	"focusflow/internal/handler/tasks"
	"focusflow/internal/handler/users"
	"focusflow/internal/middleware"
	"focusflow/internal/service"
	"focusflow/internal/store"
	"focusflow/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Deps 路由所需的相依元件；Cache、Throttle、Workers 可為 nil
type Deps struct {
	Store    store.Store
	Cache    cache.Cache
	Tokens   *service.Tokens
	Throttle *service.LoginThrottle
	Workers  worker.Pool
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	// /areas/ 與 /areas 視為相同
	e.Pre(echomw.RemoveTrailingSlash())

	api := e.Group("/api/v1")
	auth := middleware.RequireAuth(d.Tokens, d.Store)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.Store, d.Cache))

	// 註冊、登入與當前使用者
	api.POST("/users/register", users.RegisterHandler(d.Store, d.Tokens))
	api.POST("/users/login", users.LoginHandler(d.Store, d.Tokens, d.Throttle, d.Workers))
	api.GET("/users/me", users.MeHandler(), auth)

	apiAreas := api.Group("/areas", auth)
	apiAreas.POST("", areas.CreateAreaHandler(d.Store))
	apiAreas.GET("", areas.ListAreasHandler(d.Store))
	apiAreas.GET("/:id", areas.GetAreaHandler(d.Store))
	apiAreas.PATCH("/:id", areas.UpdateAreaHandler(d.Store))
	apiAreas.DELETE("/:id", areas.DeleteAreaHandler(d.Store))

	apiTasks := api.Group("/tasks", auth)
	apiTasks.POST("", tasks.CreateTaskHandler(d.Store))
	apiTasks.GET("", tasks.ListTasksHandler(d.Store))
	apiTasks.GET("/:id", tasks.GetTaskHandler(d.Store))
	apiTasks.PATCH("/:id", tasks.UpdateTaskHandler(d.Store))
	apiTasks.DELETE("/:id", tasks.DeleteTaskHandler(d.Store))

	apiNotes := api.Group("/notes", auth)
	apiNotes.POST("", notes.CreateNoteHandler(d.Store))
	apiNotes.GET("", notes.ListNotesHandler(d.Store))
	apiNotes.GET("/:id", notes.GetNoteHandler(d.Store))
	apiNotes.PATCH("/:id", notes.UpdateNoteHandler(d.Store))
	apiNotes.DELETE("/:id", notes.DeleteNoteHandler(d.Store))

	api.GET("/search", search.SearchHandler(d.Store), auth)
}
