package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecavus/taskboard/internal/domain/entity"
	"github.com/ecavus/taskboard/internal/domain/repository"
)

func TestTodoRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO todos")).
		WithArgs("Buy milk", "Groceries", "u1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "completed", "created_at", "updated_at"}).
			AddRow("t1", false, now, now))

	todo := &entity.Todo{Title: "Buy milk", Category: "Groceries", UserID: "u1"}
	require.NoError(t, repo.Create(context.Background(), todo))
	assert.Equal(t, "t1", todo.ID)
	assert.False(t, todo.Completed)
	assert.Equal(t, todo.CreatedAt, todo.UpdatedAt)
}

func TestTodoRepositoryListByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM todos")).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "completed", "category", "user_id", "created_at", "updated_at",
		}).
			AddRow("t2", "Newer", false, "General", "u1", now, now).
			AddRow("t1", "Older", true, "Work", "u1", now.Add(-time.Hour), now))

	todos, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Newer", todos[0].Title)
	assert.Equal(t, "Older", todos[1].Title)
}

func TestTodoRepositoryListByUserEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM todos")).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "completed", "category", "user_id", "created_at", "updated_at",
		}))

	todos, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoRepositoryUpdatePartialPatch(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	done := true
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todos")).
		WithArgs("t1", "u1", (*string)(nil), (*string)(nil), &done).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "completed", "category", "user_id", "created_at", "updated_at",
		}).AddRow("t1", "Buy milk", true, "Groceries", "u1", now.Add(-time.Hour), now))

	got, err := repo.Update(context.Background(), "u1", "t1", entity.TodoPatch{Completed: &done})
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, "Buy milk", got.Title)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestTodoRepositoryUpdateForeignTodo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	title := "hijack"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todos")).
		WithArgs("t1", "intruder", &title, (*string)(nil), (*bool)(nil)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), "intruder", "t1", entity.TodoPatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTodoRepositoryDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).
		WithArgs("t1", "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), "u1", "t1"))
}

func TestTodoRepositoryDeleteForeignTodo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).
		WithArgs("t1", "intruder").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "intruder", "t1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
