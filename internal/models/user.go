// Package models defines the persisted record types: users, tasks, and the
// comments embedded in tasks. All records carry JSON tags matching the
// on-disk format and validate tags checked when collections are loaded.
package models

import "time"

// User is an account record. Users are created by registration and never
// mutated or deleted afterwards.
//
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	ID        string    `json:"id" validate:"required"`
	Username  string    `json:"username" validate:"required"`
	Password  string    `json:"password" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}
