package router

import (
	"github.com/ecavus/taskboard/internal/application"
	"github.com/ecavus/taskboard/internal/container"
	"github.com/ecavus/taskboard/internal/infrastructure/postgres"
	handlers "github.com/ecavus/taskboard/internal/interface/http"
	"github.com/ecavus/taskboard/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := postgres.NewUserRepository(pool)
	todos := postgres.NewTodoRepository(pool)
	cats := postgres.NewCategoryRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger, container.GetRabbitPub(), cfg.AppName)
	userSvc := application.NewUserService(users, container.GetRedis(), container.GetGCS(), cfg.GCSBucket, logger)
	todoSvc := application.NewTodoService(todos)
	catSvc := application.NewCategoryService(cats)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewTodoModule(handlers.NewTodoHandler(todoSvc, logger), container.GetJWT()))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(catSvc, logger), container.GetJWT()))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(userSvc, logger), container.GetJWT()))
}
