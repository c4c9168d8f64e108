package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ecavus/taskboard/internal/application"
	"github.com/ecavus/taskboard/internal/domain/entity"
	"github.com/ecavus/taskboard/internal/interface/middleware"
	"github.com/ecavus/taskboard/pkg/response"
	"github.com/ecavus/taskboard/pkg/validation"
)

// TodoHandler serves the owner-scoped todo endpoints.
type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
}

type updateTodoRequest struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	Completed *bool   `json:"completed"`
}

// List handles GET /api/todos, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	todos, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("list todos failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	todo, err := h.Svc.Create(c.Request.Context(), userID, req.Title, req.Category)
	if err != nil {
		if errors.Is(err, application.ErrEmptyTitle) {
			response.Err(c, http.StatusBadRequest, "title must not be empty")
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("create todo failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Update handles PUT /api/todos/:id with a partial body.
func (h *TodoHandler) Update(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	todo, err := h.Svc.Update(c.Request.Context(), userID, id, entity.TodoPatch{
		Title:     req.Title,
		Category:  req.Category,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTodoNotFound):
			response.Err(c, http.StatusNotFound, "todo not found")
		case errors.Is(err, application.ErrEmptyTitle):
			response.Err(c, http.StatusBadRequest, "title must not be empty")
		default:
			h.Logger.WithError(err).WithField("user_id", userID).Error("update todo failed")
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, application.ErrTodoNotFound) {
			response.Err(c, http.StatusNotFound, "todo not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("delete todo failed")
		response.Internal(c)
		return
	}
	response.Message(c, "Todo deleted")
}
