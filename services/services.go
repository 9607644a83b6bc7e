package services

import (
	"github.com/nhonn/secret-key-manager-sub001/repositories"
)

// Services holds all service instances
type Services struct {
	Project      ProjectService
	Secret       SecretService
	Audit        AuditService
	Provisioning ProvisioningService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Project:      NewProjectService(repos.Project, repos.Secret),
		Secret:       NewSecretService(repos.Secret, repos.Project),
		Audit:        NewAuditService(repos.Audit),
		Provisioning: NewProvisioningService(repos.User, repos.Project),
	}
}
