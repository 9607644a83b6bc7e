package models

import (
	"strings"
	"time"
)

// Secret is a single API key, credential or environment variable inside a
// project. Values are stored as provided; listings show only the masked form.
type Secret struct {
	ID          string     `json:"id" db:"id"`
	ProjectID   string     `json:"project_id" db:"project_id"`
	Key         string     `json:"key" db:"key"`
	Value       string     `json:"value" db:"value"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	AuditFields
}

// MaskedValue returns a display form that never exposes the full value.
// The suffix is taken in runes so multibyte values render cleanly.
func (s *Secret) MaskedValue() string {
	runes := []rune(s.Value)
	if len(runes) <= 4 {
		return "••••••••"
	}
	return "••••••••" + string(runes[len(runes)-4:])
}

// SecretForm represents form data for creating/updating secrets
type SecretForm struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Validate validates the secret form data
func (f *SecretForm) Validate() []string {
	var errors []string

	key := strings.TrimSpace(f.Key)
	if key == "" {
		errors = append(errors, "Key is required")
	}

	if len(key) > 100 {
		errors = append(errors, "Key must be less than 100 characters")
	}

	if key != "" && !isValidSecretKey(key) {
		errors = append(errors, "Key must contain only letters, digits and underscores, and must not start with a digit")
	}

	if f.Value == "" {
		errors = append(errors, "Value is required")
	}

	if len(f.Value) > 10000 {
		errors = append(errors, "Value must be less than 10000 characters")
	}

	if len(f.Description) > 500 {
		errors = append(errors, "Description must be less than 500 characters")
	}

	return errors
}

// isValidSecretKey checks the ENV-style key format
func isValidSecretKey(key string) bool {
	for i, char := range key {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		case char == '_':
		case char >= '0' && char <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
