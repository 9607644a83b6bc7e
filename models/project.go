package models

import (
	"strings"
	"time"
)

// DefaultProjectName is the project provisioned for every new user
const DefaultProjectName = "Default Project"

// Project groups a user's secrets
type Project struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	SecretCount int       `json:"secret_count,omitempty" db:"-"`
	AuditFields
}

// ProjectForm represents form data for creating/updating projects
type ProjectForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate validates the project form data
func (f *ProjectForm) Validate() []string {
	var errors []string

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errors = append(errors, "Name is required")
	}

	if len(name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if len(f.Description) > 500 {
		errors = append(errors, "Description must be less than 500 characters")
	}

	return errors
}
