package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uxelf/tasksapp/internal/container"
	handlers "github.com/uxelf/tasksapp/internal/interface/http"
	"github.com/uxelf/tasksapp/internal/interface/middleware"
)

// TaskModule wires task HTTP handlers into routes. Every task route requires
// an authenticated identity.
type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(middleware.RequireAuth())
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/day", m.Handler.ListForDay)
		auth.GET("/month", m.Handler.ListForMonth)
		auth.GET("/status", m.Handler.Statuses)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
