package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ecavus/taskboard/internal/application"
	"github.com/ecavus/taskboard/internal/interface/middleware"
	"github.com/ecavus/taskboard/pkg/response"
	"github.com/ecavus/taskboard/pkg/validation"
)

// maxAvatarSize bounds multipart avatar uploads.
const maxAvatarSize = 5 << 20

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.UserService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatarUrl"`
}

// Get handles GET /api/user/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("get profile failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles PUT /api/user/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	p, err := h.Svc.UpdateProfile(c.Request.Context(), userID, application.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("update profile failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UploadAvatar handles POST /api/user/avatar (multipart field "avatar").
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Err(c, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer func() { _ = file.Close() }()
	if header.Size > maxAvatarSize {
		response.Err(c, http.StatusBadRequest, "avatar too large")
		return
	}

	p, err := h.Svc.UploadAvatar(c.Request.Context(), userID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrGCSNotConfigured):
			response.Err(c, http.StatusServiceUnavailable, "avatar storage unavailable")
		case errors.Is(err, application.ErrUserNotFound):
			response.Err(c, http.StatusNotFound, "user not found")
		default:
			h.Logger.WithError(err).WithField("user_id", userID).Error("avatar upload failed")
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, p)
}
