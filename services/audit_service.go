package services

import (
	"context"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/repositories"
)

// AuditPageSize is the number of audit entries per review page
const AuditPageSize = 25

// AuditService interface defines audit trail business logic
type AuditService interface {
	Record(entry *models.AuditLogEntry) error
	GetPage(ctx context.Context, page int) ([]models.AuditLogEntry, models.Pagination, error)
	GetRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Record stores one audit entry
func (s *auditService) Record(entry *models.AuditLogEntry) error {
	return s.auditRepo.Create(entry)
}

// GetPage retrieves one page of the audit trail, newest first
func (s *auditService) GetPage(ctx context.Context, page int) ([]models.AuditLogEntry, models.Pagination, error) {
	total, err := s.auditRepo.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	pagination := models.NewPagination(page, AuditPageSize, total)

	entries, err := s.auditRepo.List(ctx, pagination.PerPage, pagination.Offset())
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return entries, pagination, nil
}

// GetRecent retrieves the most recent audit entries for the dashboard
func (s *auditService) GetRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	return s.auditRepo.List(ctx, limit, 0)
}
