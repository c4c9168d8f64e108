package entity

import "time"

// DefaultCategory is assigned when a todo is created without one.
const DefaultCategory = "General"

// Todo is a task record owned by exactly one user. CreatedAt and UpdatedAt
// are equal until the record is edited; clients use the divergence to label
// a todo "edited" vs "created".
type Todo struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Category  string    `json:"category"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TodoPatch carries the optional fields of a partial update.
// A nil field leaves the stored value unchanged.
type TodoPatch struct {
	Title     *string
	Category  *string
	Completed *bool
}
