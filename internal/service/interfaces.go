package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for the tenant provisioning engine
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByName(ctx context.Context, name string) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (*OrganizationResponse, error)
	Rename(ctx context.Context, currentSlug, newName string) (*RenameResult, error)
	Delete(ctx context.Context, slug, requesterAdminID string) error
	AuditStorage(ctx context.Context) (*StorageAuditResponse, error)
	PurgeOrphan(ctx context.Context, collectionName string) error
}
