package application

import (
	"context"
	"errors"
	"strings"

	"github.com/ecavus/taskboard/internal/domain/entity"
	repo "github.com/ecavus/taskboard/internal/domain/repository"
)

var ErrEmptyName = errors.New("name must not be empty")

// CategoryService performs the owner-scoped category operations.
type CategoryService struct {
	Repo repo.CategoryRepository
}

func NewCategoryService(cats repo.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: cats}
}

// List returns the caller's categories.
func (s *CategoryService) List(ctx context.Context, userID string) ([]entity.Category, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Create adds a category owned by the caller.
func (s *CategoryService) Create(ctx context.Context, userID, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	c := &entity.Category{Name: name, UserID: userID}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category the caller owns; a foreign id is a silent no-op.
func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
