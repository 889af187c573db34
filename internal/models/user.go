package models

import (
	"time"
)

// User represents a native account managed by the application itself,
// as opposed to the spreadsheet-backed pseudo-accounts that exist only
// as session values.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
