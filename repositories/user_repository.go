package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nhonn/secret-key-manager-sub001/models"
)

// UserRepository interface defines user account database operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	RecordSignIn(ctx context.Context, id string) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, provider, created_at, last_sign_in_at
		FROM users
		WHERE id = ?
	`

	var user models.User
	var lastSignIn sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.CreatedAt,
		&lastSignIn,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lastSignIn.Valid {
		user.LastSignInAt = &lastSignIn.Time
	}

	return &user, nil
}

// Create inserts a new user account. The sqlite driver error is returned
// unwrapped so callers can classify constraint violations.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, provider, created_at)
		VALUES (?, ?, ?, ?)
	`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Provider,
		user.CreatedAt,
	)
	return err
}

// RecordSignIn stamps the user's last sign-in time
func (r *userRepository) RecordSignIn(ctx context.Context, id string) error {
	query := `UPDATE users SET last_sign_in_at = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to record sign-in: %w", err)
	}

	return nil
}
