package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/repositories"
)

// SecretService interface defines secret management business logic
type SecretService interface {
	GetSecretsForProject(ctx context.Context, userID, projectID string) ([]models.Secret, error)
	GetSecretByID(ctx context.Context, userID, id string) (*models.Secret, error)
	CreateSecret(ctx context.Context, userID, projectID string, form *models.SecretForm) (*models.Secret, error)
	UpdateSecret(ctx context.Context, userID, id string, form *models.SecretForm) (*models.Secret, error)
	DeleteSecret(ctx context.Context, userID, id string) error
}

// secretService implements SecretService interface
type secretService struct {
	secretRepo  repositories.SecretRepository
	projectRepo repositories.ProjectRepository
}

// NewSecretService creates a new secret service
func NewSecretService(secretRepo repositories.SecretRepository, projectRepo repositories.ProjectRepository) SecretService {
	return &secretService{
		secretRepo:  secretRepo,
		projectRepo: projectRepo,
	}
}

// GetSecretsForProject retrieves all secrets in a project the user owns
func (s *secretService) GetSecretsForProject(ctx context.Context, userID, projectID string) ([]models.Secret, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.secretRepo.GetByProject(ctx, projectID)
}

// GetSecretByID retrieves a secret, enforcing project ownership
func (s *secretService) GetSecretByID(ctx context.Context, userID, id string) (*models.Secret, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid secret ID")
	}

	secret, err := s.secretRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedProject(ctx, userID, secret.ProjectID); err != nil {
		return nil, fmt.Errorf("secret %s not found", id)
	}

	return secret, nil
}

// CreateSecret creates a new secret with validation
func (s *secretService) CreateSecret(ctx context.Context, userID, projectID string, form *models.SecretForm) (*models.Secret, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(form.Key)
	if existing, _ := s.findSecretByKey(ctx, projectID, key); existing != nil {
		return nil, fmt.Errorf("a secret with key %s already exists in this project", key)
	}

	secret := &models.Secret{
		ProjectID:   projectID,
		Key:         key,
		Value:       form.Value,
		Description: strings.TrimSpace(form.Description),
	}

	if err := s.secretRepo.Create(ctx, secret); err != nil {
		return nil, fmt.Errorf("failed to create secret: %w", err)
	}

	return secret, nil
}

// UpdateSecret updates an existing secret
func (s *secretService) UpdateSecret(ctx context.Context, userID, id string, form *models.SecretForm) (*models.Secret, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	secret, err := s.GetSecretByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	key := strings.TrimSpace(form.Key)
	if !strings.EqualFold(key, secret.Key) {
		if existing, _ := s.findSecretByKey(ctx, secret.ProjectID, key); existing != nil && existing.ID != id {
			return nil, fmt.Errorf("a secret with key %s already exists in this project", key)
		}
	}

	secret.Key = key
	secret.Value = form.Value
	secret.Description = strings.TrimSpace(form.Description)

	if err := s.secretRepo.Update(ctx, secret); err != nil {
		return nil, fmt.Errorf("failed to update secret: %w", err)
	}

	return secret, nil
}

// DeleteSecret permanently deletes a secret
func (s *secretService) DeleteSecret(ctx context.Context, userID, id string) error {
	if _, err := s.GetSecretByID(ctx, userID, id); err != nil {
		return err
	}

	if err := s.secretRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	return nil
}

// ownedProject loads a project and verifies the user owns it
func (s *secretService) ownedProject(ctx context.Context, userID, projectID string) (*models.Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("invalid project ID")
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.UserID != userID {
		return nil, fmt.Errorf("project %s not found", projectID)
	}

	return project, nil
}

// findSecretByKey finds a secret by key within a project (helper function)
func (s *secretService) findSecretByKey(ctx context.Context, projectID, key string) (*models.Secret, error) {
	if key == "" {
		return nil, fmt.Errorf("secret key is empty")
	}

	secrets, err := s.secretRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for _, secret := range secrets {
		if strings.EqualFold(secret.Key, key) {
			return &secret, nil
		}
	}

	return nil, fmt.Errorf("no secret with key %s", key)
}
