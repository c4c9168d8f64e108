package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ecavus/taskboard/internal/domain/entity"
	"github.com/ecavus/taskboard/internal/domain/repository"
)

// TodoRepository implements repository.TodoRepository on Postgres.
// Every statement is keyed by (id, user_id) so a caller can never touch
// another user's records.
type TodoRepository struct {
	pool PgxPool
}

func NewTodoRepository(pool PgxPool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, category, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, completed, created_at, updated_at
	`, t.Title, t.Category, t.UserID)

	return row.Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, completed, category, user_id, created_at, updated_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Category,
			&t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// Update applies a partial patch in a single statement; nil patch fields keep
// their stored value. The row's updated_at always advances.
func (r *TodoRepository) Update(ctx context.Context, userID, id string, patch entity.TodoPatch) (*entity.Todo, error) {
	t := &entity.Todo{}
	row := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET title     = COALESCE($3, title),
		    category  = COALESCE($4, category),
		    completed = COALESCE($5, completed),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, completed, category, user_id, created_at, updated_at
	`, id, userID, patch.Title, patch.Category, patch.Completed)

	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.Category,
		&t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM todos WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
