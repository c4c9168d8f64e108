package entity

import "time"

// Category is a named grouping owned by exactly one user.
type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
