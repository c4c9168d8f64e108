package application

import (
	"context"
	"errors"
	"strings"

	"github.com/ecavus/taskboard/internal/domain/entity"
	repo "github.com/ecavus/taskboard/internal/domain/repository"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrEmptyTitle   = errors.New("title must not be empty")
)

// TodoService performs the owner-scoped task operations.
type TodoService struct {
	Repo repo.TodoRepository
}

func NewTodoService(todos repo.TodoRepository) *TodoService {
	return &TodoService{Repo: todos}
}

// List returns the caller's todos, most recent first.
func (s *TodoService) List(ctx context.Context, userID string) ([]entity.Todo, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Create adds a todo owned by the caller. An omitted category falls back to
// the default.
func (s *TodoService) Create(ctx context.Context, userID, title, category string) (*entity.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = entity.DefaultCategory
	}
	t := &entity.Todo{Title: title, Category: category, UserID: userID}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update applies a partial patch to a todo the caller owns.
func (s *TodoService) Update(ctx context.Context, userID, id string, patch entity.TodoPatch) (*entity.Todo, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, ErrEmptyTitle
		}
		patch.Title = &trimmed
	}
	t, err := s.Repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete removes a todo the caller owns.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}
