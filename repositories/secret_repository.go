package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/userctx"
)

// SecretRepository interface defines secret database operations
type SecretRepository interface {
	GetByProject(ctx context.Context, projectID string) ([]models.Secret, error)
	GetByID(ctx context.Context, id string) (*models.Secret, error)
	Create(ctx context.Context, secret *models.Secret) error
	Update(ctx context.Context, secret *models.Secret) error
	Delete(ctx context.Context, id string) error
	CountForProject(ctx context.Context, projectID string) (int, error)
}

// secretRepository implements SecretRepository interface
type secretRepository struct {
	db *sql.DB
}

// NewSecretRepository creates a new secret repository
func NewSecretRepository(db *sql.DB) SecretRepository {
	return &secretRepository{db: db}
}

// GetByProject retrieves all secrets in a project
func (r *secretRepository) GetByProject(ctx context.Context, projectID string) ([]models.Secret, error) {
	query := `
		SELECT id, project_id, key, value, description, created_at, updated_at,
		       created_by, modified_by, modified_at
		FROM secrets
		WHERE project_id = ?
		ORDER BY key ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query secrets: %w", err)
	}
	defer rows.Close()

	var secrets []models.Secret
	for rows.Next() {
		secret, err := scanSecret(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan secret: %w", err)
		}
		secrets = append(secrets, *secret)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating secrets: %w", err)
	}

	return secrets, nil
}

// GetByID retrieves a secret by ID
func (r *secretRepository) GetByID(ctx context.Context, id string) (*models.Secret, error) {
	query := `
		SELECT id, project_id, key, value, description, created_at, updated_at,
		       created_by, modified_by, modified_at
		FROM secrets
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	secret, err := scanSecret(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("secret %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}

	return secret, nil
}

// Create creates a new secret. The sqlite driver error is returned unwrapped
// so callers can classify constraint violations.
func (r *secretRepository) Create(ctx context.Context, secret *models.Secret) error {
	query := `
		INSERT INTO secrets (id, project_id, key, value, description, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if secret.ID == "" {
		secret.ID = uuid.NewString()
	}
	if secret.CreatedAt.IsZero() {
		secret.CreatedAt = time.Now()
	}

	userEmail := userctx.GetUserEmail(ctx)

	_, err := r.db.ExecContext(ctx, query,
		secret.ID,
		secret.ProjectID,
		secret.Key,
		secret.Value,
		secret.Description,
		secret.CreatedAt,
		userEmail,
	)
	if err != nil {
		return err
	}

	secret.CreatedBy = userEmail
	return nil
}

// Update updates an existing secret
func (r *secretRepository) Update(ctx context.Context, secret *models.Secret) error {
	query := `
		UPDATE secrets
		SET key = ?, value = ?, description = ?, updated_at = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	result, err := r.db.ExecContext(ctx, query,
		secret.Key,
		secret.Value,
		secret.Description,
		now,
		userEmail,
		now,
		secret.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update secret: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("secret %s not found", secret.ID)
	}

	secret.UpdatedAt = &now
	secret.ModifiedBy = userEmail
	secret.ModifiedAt = &now
	return nil
}

// Delete deletes a secret by ID
func (r *secretRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM secrets WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("secret %s not found", id)
	}

	return nil
}

// CountForProject returns the number of secrets in a project
func (r *secretRepository) CountForProject(ctx context.Context, projectID string) (int, error) {
	query := `SELECT COUNT(*) FROM secrets WHERE project_id = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count secrets: %w", err)
	}

	return count, nil
}

// scanSecret scans one secret row
func scanSecret(scan func(...interface{}) error) (*models.Secret, error) {
	var secret models.Secret
	var updatedAt sql.NullTime
	var modifiedBy sql.NullString
	var modifiedAt sql.NullTime

	err := scan(
		&secret.ID,
		&secret.ProjectID,
		&secret.Key,
		&secret.Value,
		&secret.Description,
		&secret.CreatedAt,
		&updatedAt,
		&secret.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		secret.UpdatedAt = &updatedAt.Time
	}
	if modifiedBy.Valid {
		secret.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		secret.ModifiedAt = &modifiedAt.Time
	}

	return &secret, nil
}
