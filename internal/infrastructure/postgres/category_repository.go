package postgres

import (
	"context"

	"github.com/ecavus/taskboard/internal/domain/entity"
	"github.com/ecavus/taskboard/internal/domain/repository"
)

// CategoryRepository implements repository.CategoryRepository on Postgres.
type CategoryRepository struct {
	pool PgxPool
}

func NewCategoryRepository(pool PgxPool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, c.Name, c.UserID)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID string) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, user_id, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Delete removes a category owned by userID. Deleting a category the user
// does not own is a no-op, not an error.
func (r *CategoryRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM categories WHERE id = $1 AND user_id = $2
	`, id, userID)
	return err
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
