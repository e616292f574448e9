package models

import "time"

// Comment is an append-only note on a task. UserID references the author
// and may dangle if the stored data was edited externally; display code
// substitutes an unknown-author label in that case.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId" validate:"required"`
}
