package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/repositories"
)

// ProjectService interface defines project management business logic. Every
// operation takes the acting user's id and refuses to touch projects owned by
// anyone else.
type ProjectService interface {
	GetProjectsForUser(ctx context.Context, userID string) ([]models.Project, error)
	GetProjectByID(ctx context.Context, userID, id string) (*models.Project, error)
	CreateProject(ctx context.Context, userID string, form *models.ProjectForm) (*models.Project, error)
	UpdateProject(ctx context.Context, userID, id string, form *models.ProjectForm) (*models.Project, error)
	DeleteProject(ctx context.Context, userID, id string) error
	ValidateDeleteProject(ctx context.Context, userID, id string) error
}

// projectService implements ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	secretRepo  repositories.SecretRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository, secretRepo repositories.SecretRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		secretRepo:  secretRepo,
	}
}

// GetProjectsForUser retrieves all projects owned by the user
func (s *projectService) GetProjectsForUser(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projectRepo.GetAllForUser(ctx, userID)
}

// GetProjectByID retrieves a project, enforcing ownership
func (s *projectService) GetProjectByID(ctx context.Context, userID, id string) (*models.Project, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid project ID")
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Foreign projects read as not-found
	if project.UserID != userID {
		return nil, fmt.Errorf("project %s not found", id)
	}

	return project, nil
}

// CreateProject creates a new project with validation
func (s *projectService) CreateProject(ctx context.Context, userID string, form *models.ProjectForm) (*models.Project, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	name := strings.TrimSpace(form.Name)
	if existing, _ := s.findProjectByName(ctx, userID, name); existing != nil {
		return nil, fmt.Errorf("a project named %s already exists", name)
	}

	project := &models.Project{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(form.Description),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject updates an existing project
func (s *projectService) UpdateProject(ctx context.Context, userID, id string, form *models.ProjectForm) (*models.Project, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	project, err := s.GetProjectByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(form.Name)
	if !strings.EqualFold(name, project.Name) {
		if existing, _ := s.findProjectByName(ctx, userID, name); existing != nil && existing.ID != id {
			return nil, fmt.Errorf("a project named %s already exists", name)
		}
	}

	project.Name = name
	project.Description = strings.TrimSpace(form.Description)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject permanently deletes a project
func (s *projectService) DeleteProject(ctx context.Context, userID, id string) error {
	if err := s.ValidateDeleteProject(ctx, userID, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// ValidateDeleteProject checks if a project can be safely deleted
func (s *projectService) ValidateDeleteProject(ctx context.Context, userID, id string) error {
	if _, err := s.GetProjectByID(ctx, userID, id); err != nil {
		return err
	}

	secretCount, err := s.secretRepo.CountForProject(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check project secrets: %w", err)
	}

	if secretCount > 0 {
		return fmt.Errorf("cannot delete a project that still holds %d secrets. Remove them first", secretCount)
	}

	projectCount, err := s.projectRepo.CountForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}

	if projectCount <= 1 {
		return fmt.Errorf("cannot delete the last project. At least one project must remain")
	}

	return nil
}

// findProjectByName finds a project by name for a user (helper function)
func (s *projectService) findProjectByName(ctx context.Context, userID, name string) (*models.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is empty")
	}

	projects, err := s.projectRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		if strings.EqualFold(project.Name, name) {
			return &project, nil
		}
	}

	return nil, fmt.Errorf("no project named %s", name)
}
