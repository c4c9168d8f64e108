package application

import (
	"context"
	"fmt"
	"time"

	"github.com/ecavus/taskboard/internal/domain/entity"
	repo "github.com/ecavus/taskboard/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	byID    map[string]*entity.User
	seq     int
	failure error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.failure != nil {
		return f.failure
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("u%d", f.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return repo.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

// downUserRepo fails every call the way an unreachable store would.
type downUserRepo struct {
	err error
}

func (f *downUserRepo) Create(context.Context, *entity.User) error { return f.err }
func (f *downUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, f.err
}
func (f *downUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, f.err
}
func (f *downUserRepo) Update(context.Context, *entity.User) error { return f.err }

type fakeTodoRepo struct {
	byID map[string]*entity.Todo
	seq  int
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{byID: map[string]*entity.Todo{}}
}

func (f *fakeTodoRepo) Create(_ context.Context, t *entity.Todo) error {
	f.seq++
	t.ID = fmt.Sprintf("t%d", f.seq)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	f.byID[t.ID] = &cp
	return nil
}

func (f *fakeTodoRepo) ListByUser(_ context.Context, userID string) ([]entity.Todo, error) {
	out := make([]entity.Todo, 0)
	for _, t := range f.byID {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, userID, id string, patch entity.TodoPatch) (*entity.Todo, error) {
	t, ok := f.byID[id]
	if !ok || t.UserID != userID {
		return nil, repo.ErrNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, userID, id string) error {
	t, ok := f.byID[id]
	if !ok || t.UserID != userID {
		return repo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
	seq  int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.seq++
	c.ID = fmt.Sprintf("c%d", f.seq)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) ListByUser(_ context.Context, userID string) ([]entity.Category, error) {
	out := make([]entity.Category, 0)
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, userID, id string) error {
	c, ok := f.byID[id]
	if ok && c.UserID == userID {
		delete(f.byID, id)
	}
	return nil
}

var (
	_ repo.UserRepository     = (*fakeUserRepo)(nil)
	_ repo.UserRepository     = (*downUserRepo)(nil)
	_ repo.TodoRepository     = (*fakeTodoRepo)(nil)
	_ repo.CategoryRepository = (*fakeCategoryRepo)(nil)
)
