// Package repository defines the persistence interfaces of the domain.
package repository

import (
	"context"
	"errors"

	"github.com/ecavus/taskboard/internal/domain/entity"
)

// ErrNotFound is returned when a referenced record does not exist or is not
// visible to the requesting owner.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when creating a user with an email that is
// already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository persists account records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

// TodoRepository persists task records. All operations are scoped to the
// owning user.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	ListByUser(ctx context.Context, userID string) ([]entity.Todo, error)
	Update(ctx context.Context, userID, id string, patch entity.TodoPatch) (*entity.Todo, error)
	Delete(ctx context.Context, userID, id string) error
}

// CategoryRepository persists category records, scoped to the owning user.
// Delete is a no-op (nil error) when the category is not owned by userID.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	ListByUser(ctx context.Context, userID string) ([]entity.Category, error)
	Delete(ctx context.Context, userID, id string) error
}
