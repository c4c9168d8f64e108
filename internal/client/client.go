// Package client implements the browser-side application state in library
// form: an HTTP client for the REST surface and a view-model store that
// mirrors the server lists locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ecavus/taskboard/internal/domain/entity"
)

// User is the client-side projection of an account.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// APIError carries the status and error body of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 rejection.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}

// Client talks to the taskboard REST API. One request per call, no retries;
// the bearer token is attached to every protected call.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 400 {
		var eb struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&eb)
		if eb.Error == "" {
			eb.Error = res.Status
		}
		return &APIError{Status: res.StatusCode, Message: eb.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, name, email, password, avatarURL string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": password, "avatarUrl": avatarURL,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &out); err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out.User, nil
}

// GetProfile fetches the caller's own profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile replaces name and avatar.
func (c *Client) UpdateProfile(ctx context.Context, name, avatarURL string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", map[string]string{
		"name": name, "avatarUrl": avatarURL,
	}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListTodos fetches the full todo list, newest first.
func (c *Client) ListTodos(ctx context.Context) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo adds a task; an empty category falls back server-side.
func (c *Client) CreateTodo(ctx context.Context, title, category string) (*entity.Todo, error) {
	var t entity.Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos", map[string]string{
		"title": title, "category": category,
	}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTodo sends a partial patch; nil fields are omitted from the body.
func (c *Client) UpdateTodo(ctx context.Context, id string, patch entity.TodoPatch) (*entity.Todo, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Category != nil {
		body["category"] = *patch.Category
	}
	if patch.Completed != nil {
		body["completed"] = *patch.Completed
	}
	var t entity.Todo
	if err := c.do(ctx, http.MethodPut, "/api/todos/"+id, body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTodo removes a task by id.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, nil)
}

// ListCategories fetches the caller's categories.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var cats []entity.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	var cat entity.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", map[string]string{"name": name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}
