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

// ProjectRepository interface defines project database operations
type ProjectRepository interface {
	GetAllForUser(ctx context.Context, userID string) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	CountForUser(ctx context.Context, userID string) (int, error)
}

// projectRepository implements ProjectRepository interface
type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// GetAllForUser retrieves all projects owned by a user, with secret counts
func (r *projectRepository) GetAllForUser(ctx context.Context, userID string) ([]models.Project, error) {
	query := `
		SELECT p.id, p.user_id, p.name, p.description, p.created_at,
		       p.created_by, p.modified_by, p.modified_at,
		       (SELECT COUNT(*) FROM secrets s WHERE s.project_id = p.id) AS secret_count
		FROM projects p
		WHERE p.user_id = ?
		ORDER BY p.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows.Scan, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// GetByID retrieves a project by ID
func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT id, user_id, name, description, created_at,
		       created_by, modified_by, modified_at
		FROM projects
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	project, err := scanProject(row.Scan, false)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// Create creates a new project. The sqlite driver error is returned
// unwrapped so callers can classify constraint violations.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, description, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}

	userEmail := userctx.GetUserEmail(ctx)

	_, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.UserID,
		project.Name,
		project.Description,
		project.CreatedAt,
		userEmail,
	)
	if err != nil {
		return err
	}

	project.CreatedBy = userEmail
	return nil
}

// Update updates an existing project
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?, modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	result, err := r.db.ExecContext(ctx, query,
		project.Name,
		project.Description,
		userEmail,
		now,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("project %s not found", project.ID)
	}

	project.ModifiedBy = userEmail
	project.ModifiedAt = &now
	return nil
}

// Delete deletes a project by ID
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("project %s not found", id)
	}

	return nil
}

// CountForUser returns the number of projects a user owns
func (r *projectRepository) CountForUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM projects WHERE user_id = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}

// scanProject scans one project row, optionally with the secret count column
func scanProject(scan func(...interface{}) error, withCount bool) (*models.Project, error) {
	var project models.Project
	var modifiedBy sql.NullString
	var modifiedAt sql.NullTime

	dest := []interface{}{
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	}
	if withCount {
		dest = append(dest, &project.SecretCount)
	}

	if err := scan(dest...); err != nil {
		return nil, err
	}

	if modifiedBy.Valid {
		project.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		project.ModifiedAt = &modifiedAt.Time
	}

	return &project, nil
}
