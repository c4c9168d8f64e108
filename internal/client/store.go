package client

import (
	"context"
	"strings"

	"github.com/ecavus/taskboard/internal/domain/entity"
)

// Filters is the local-only view state. None of it is sent to the server;
// the visible set is recomputed from the full fetched list.
type Filters struct {
	SelectedCategory string // empty means all categories
	HideCompleted    bool
	SearchQuery      string
	ShowStats        bool
}

// Stats summarizes the full todo list for the statistics panel.
type Stats struct {
	Total     int
	Completed int
	Active    int
}

// Store is the view model: the authenticated identity, the full todo and
// category lists, and the filter state. Mutations call the API first and
// patch the local lists only on success, so a failed call leaves prior
// state intact. Not safe for concurrent use; the UI issues one request per
// user action.
type Store struct {
	api        *Client
	user       *User
	todos      []entity.Todo
	categories []entity.Category

	Filters Filters

	errMsg string
}

func NewStore(api *Client) *Store {
	return &Store{api: api}
}

// Load re-derives the identity from the stored token and fetches both lists.
// A rejected or absent token clears the token and leaves the store anonymous.
func (s *Store) Load(ctx context.Context) error {
	s.errMsg = ""
	if s.api.Token == "" {
		s.user = nil
		return nil
	}
	u, err := s.api.GetProfile(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			s.api.Token = ""
			s.user = nil
			return nil
		}
		return err
	}
	s.user = u

	todos, err := s.api.ListTodos(ctx)
	if err != nil {
		return err
	}
	cats, err := s.api.ListCategories(ctx)
	if err != nil {
		return err
	}
	s.todos = todos
	s.categories = cats
	return nil
}

// Login authenticates and loads the lists.
func (s *Store) Login(ctx context.Context, email, password string) error {
	u, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.errMsg = "login failed"
		return err
	}
	s.user = u
	return s.Load(ctx)
}

// Logout drops the token and all fetched state. The server keeps no session:
// the discarded token stays valid until expiry.
func (s *Store) Logout() {
	s.api.Token = ""
	s.user = nil
	s.todos = nil
	s.categories = nil
	s.errMsg = ""
}

func (s *Store) User() *User                   { return s.user }
func (s *Store) Todos() []entity.Todo          { return s.todos }
func (s *Store) Categories() []entity.Category { return s.categories }
func (s *Store) Err() string                   { return s.errMsg }

// VisibleTodos recomputes the derived view: category match, not-completed
// when hiding, and case-insensitive substring match against the title.
func (s *Store) VisibleTodos() []entity.Todo {
	query := strings.ToLower(s.Filters.SearchQuery)
	out := make([]entity.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if s.Filters.SelectedCategory != "" && t.Category != s.Filters.SelectedCategory {
			continue
		}
		if s.Filters.HideCompleted && t.Completed {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Stats counts over the full list, not the filtered view.
func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.todos)}
	for _, t := range s.todos {
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	return st
}

// AddTodo creates a task and prepends it to the local list.
func (s *Store) AddTodo(ctx context.Context, title, category string) error {
	t, err := s.api.CreateTodo(ctx, title, category)
	if err != nil {
		s.errMsg = "could not add todo"
		return err
	}
	s.errMsg = ""
	s.todos = append([]entity.Todo{*t}, s.todos...)
	return nil
}

// ToggleTodo flips completion and replaces the local record with the
// server's copy.
func (s *Store) ToggleTodo(ctx context.Context, id string) error {
	idx := s.todoIndex(id)
	if idx < 0 {
		return nil
	}
	completed := !s.todos[idx].Completed
	t, err := s.api.UpdateTodo(ctx, id, entity.TodoPatch{Completed: &completed})
	if err != nil {
		s.errMsg = "could not update todo"
		return err
	}
	s.errMsg = ""
	s.todos[idx] = *t
	return nil
}

// EditTodo updates title and category in place.
func (s *Store) EditTodo(ctx context.Context, id, title, category string) error {
	idx := s.todoIndex(id)
	if idx < 0 {
		return nil
	}
	t, err := s.api.UpdateTodo(ctx, id, entity.TodoPatch{Title: &title, Category: &category})
	if err != nil {
		s.errMsg = "could not update todo"
		return err
	}
	s.errMsg = ""
	s.todos[idx] = *t
	return nil
}

// RemoveTodo deletes a task and drops it from the local list.
func (s *Store) RemoveTodo(ctx context.Context, id string) error {
	if err := s.api.DeleteTodo(ctx, id); err != nil {
		s.errMsg = "could not delete todo"
		return err
	}
	s.errMsg = ""
	if idx := s.todoIndex(id); idx >= 0 {
		s.todos = append(s.todos[:idx], s.todos[idx+1:]...)
	}
	return nil
}

// AddCategory creates a category and appends it locally.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	c, err := s.api.CreateCategory(ctx, name)
	if err != nil {
		s.errMsg = "could not add category"
		return err
	}
	s.errMsg = ""
	s.categories = append(s.categories, *c)
	return nil
}

// RemoveCategory deletes a category and drops it locally.
func (s *Store) RemoveCategory(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		s.errMsg = "could not delete category"
		return err
	}
	s.errMsg = ""
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) todoIndex(id string) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
