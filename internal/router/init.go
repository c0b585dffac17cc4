package router

import (
	"github.com/uxelf/tasksapp/internal/application"
	"github.com/uxelf/tasksapp/internal/container"
	pginfra "github.com/uxelf/tasksapp/internal/infrastructure/postgres"
	handlers "github.com/uxelf/tasksapp/internal/interface/http"
	"github.com/uxelf/tasksapp/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	taskRepo := pginfra.NewTaskRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	taskSvc := application.NewTaskService(taskRepo, userRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	taskHandler := handlers.NewTaskHandler(taskSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewTaskModule(taskHandler))
	r.Add(modules.NewDebugModule())
}
