package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Project ProjectRepository
	Secret  SecretRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Project: NewProjectRepository(db),
		Secret:  NewSecretRepository(db),
		Audit:   NewAuditRepository(db),
	}
}
