package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ecavus/taskboard/internal/container"
	handlers "github.com/ecavus/taskboard/internal/interface/http"
	"github.com/ecavus/taskboard/internal/interface/middleware"
	"github.com/ecavus/taskboard/pkg/helpers"
)

// TodoModule registers the protected todo endpoints.
// GET/POST /api/todos, PUT/DELETE /api/todos/:id
type TodoModule struct {
	Handler *handlers.TodoHandler
	JWT     *helpers.JWTManager
}

func NewTodoModule(h *handlers.TodoHandler, jwt *helpers.JWTManager) *TodoModule {
	return &TodoModule{Handler: h, JWT: jwt}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	{
		auth.GET("/todos", m.Handler.List)
		auth.POST("/todos", m.Handler.Create)
		auth.PUT("/todos/:id", m.Handler.Update)
		auth.DELETE("/todos/:id", m.Handler.Delete)
	}
}
