package models

import (
	"time"
)

// User represents a signed-in account provisioned from the identity platform
type User struct {
	ID           string     `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	Provider     string     `json:"provider,omitempty" db:"provider"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty" db:"last_sign_in_at"`
}
