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

// CategoryHandler serves the owner-scoped category endpoints.
type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	cats, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("list categories failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrEmptyName) {
			response.Err(c, http.StatusBadRequest, "name must not be empty")
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("create category failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete handles DELETE /api/categories/:id. A category the caller does not
// own is invisible: the delete silently does nothing.
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("delete category failed")
		response.Internal(c)
		return
	}
	response.Message(c, "Category deleted")
}
