// Package handlers contains the gin HTTP handlers for the REST surface.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ecavus/taskboard/internal/application"
	"github.com/ecavus/taskboard/pkg/response"
	"github.com/ecavus/taskboard/pkg/validation"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	AvatarURL string `json:"avatarUrl"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userBody struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Err(c, http.StatusBadRequest, "email already in use")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, userBody{Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	u, token, _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Err(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userBody{Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL},
	})
}
