// Package modules wires handlers and the authorization gate into routes.
package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ecavus/taskboard/internal/interface/http"
)

// AuthModule registers the public account endpoints.
// POST /api/auth/register, POST /api/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
}
