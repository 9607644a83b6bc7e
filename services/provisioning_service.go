package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mattn/go-sqlite3"

	"github.com/nhonn/secret-key-manager-sub001/authenticator"
	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/repositories"
)

// ProvisioningService idempotently creates default per-user resources after a
// successful sign-in: the user row itself and a default project. Repeated
// calls for the same user are safe.
//
// The returned error is diagnostic only. Provisioning is a convenience, not a
// precondition of authentication, and callers must treat the user as signed
// in regardless of the outcome here.
type ProvisioningService interface {
	EnsureUserSetup(ctx context.Context, user *authenticator.CanonicalUser) error
}

// provisioningService implements ProvisioningService interface
type provisioningService struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(userRepo repositories.UserRepository, projectRepo repositories.ProjectRepository) ProvisioningService {
	return &provisioningService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// EnsureUserSetup makes sure the user row and default project exist
func (s *provisioningService) EnsureUserSetup(ctx context.Context, user *authenticator.CanonicalUser) error {
	if user == nil || user.ID == "" {
		return errors.New("cannot provision a user without an id")
	}

	if err := s.ensureUser(ctx, user); err != nil {
		return err
	}

	if err := s.ensureDefaultProject(ctx, user.ID); err != nil {
		return err
	}

	if err := s.userRepo.RecordSignIn(ctx, user.ID); err != nil {
		log.Printf("Failed to record sign-in for user %s: %v", user.ID, err)
	}

	return nil
}

// ensureUser creates the account row if missing
func (s *provisioningService) ensureUser(ctx context.Context, user *authenticator.CanonicalUser) error {
	account := &models.User{
		ID:       user.ID,
		Email:    user.Email,
		Provider: user.Provider,
	}

	err := s.userRepo.Create(ctx, account)
	switch classifyProvisioningError(err) {
	case provisionOK:
		return nil
	case provisionAlreadyExists:
		// Idempotent re-run; nothing to do
		return nil
	case provisionPermissionDenied:
		return fmt.Errorf("permission denied creating user %s: %w", user.ID, err)
	case provisionConstraintViolation:
		return fmt.Errorf("constraint violation creating user %s: %w", user.ID, err)
	default:
		return fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}
}

// ensureDefaultProject creates the default project if missing
func (s *provisioningService) ensureDefaultProject(ctx context.Context, userID string) error {
	project := &models.Project{
		UserID: userID,
		Name:   models.DefaultProjectName,
	}

	err := s.projectRepo.Create(ctx, project)
	switch classifyProvisioningError(err) {
	case provisionOK:
		return nil
	case provisionAlreadyExists:
		return nil
	case provisionPermissionDenied:
		return fmt.Errorf("permission denied creating default project for %s: %w", userID, err)
	case provisionConstraintViolation:
		return fmt.Errorf("constraint violation creating default project for %s: %w", userID, err)
	default:
		return fmt.Errorf("failed to create default project for %s: %w", userID, err)
	}
}

// provisioningOutcome classifies a provisioning write for diagnostics
type provisioningOutcome int

const (
	provisionOK provisioningOutcome = iota
	provisionAlreadyExists
	provisionPermissionDenied
	provisionConstraintViolation
	provisionOther
)

// classifyProvisioningError distinguishes the failure modes that matter for
// idempotent provisioning: already-exists is benign, the rest are diagnostics.
func classifyProvisioningError(err error) provisioningOutcome {
	if err == nil {
		return provisionOK
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return provisionOther
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return provisionAlreadyExists
	}

	switch sqliteErr.Code {
	case sqlite3.ErrConstraint:
		return provisionConstraintViolation
	case sqlite3.ErrAuth, sqlite3.ErrPerm, sqlite3.ErrReadonly:
		return provisionPermissionDenied
	}

	return provisionOther
}
