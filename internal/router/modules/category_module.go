package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ecavus/taskboard/internal/container"
	handlers "github.com/ecavus/taskboard/internal/interface/http"
	"github.com/ecavus/taskboard/internal/interface/middleware"
	"github.com/ecavus/taskboard/pkg/helpers"
)

// CategoryModule registers the protected category endpoints.
// GET/POST /api/categories, DELETE /api/categories/:id
type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	{
		auth.GET("/categories", m.Handler.List)
		auth.POST("/categories", m.Handler.Create)
		auth.DELETE("/categories/:id", m.Handler.Delete)
	}
}
