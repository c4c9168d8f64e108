package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ecavus/taskboard/internal/container"
	handlers "github.com/ecavus/taskboard/internal/interface/http"
	"github.com/ecavus/taskboard/internal/interface/middleware"
	"github.com/ecavus/taskboard/pkg/helpers"
)

// ProfileModule registers the protected profile endpoints.
// GET/PUT /api/user/profile, POST /api/user/avatar
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	{
		auth.GET("/user/profile", m.Handler.Get)
		auth.PUT("/user/profile", m.Handler.Update)
		auth.POST("/user/avatar", m.Handler.UploadAvatar)
	}
}
