package repository

import (
	"context"

	"tenant-portal-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization directory operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*models.Organization, error)
	GetAll(ctx context.Context) ([]models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AdminRepositoryInterface defines the interface for administrator directory operations
type AdminRepositoryInterface interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	SetOrganization(ctx context.Context, adminID, orgID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TenantStoreRepositoryInterface defines the interface for per-tenant storage collections
type TenantStoreRepositoryInterface interface {
	Provision(ctx context.Context, name string) error
	CopyDocuments(ctx context.Context, src, dst string) (int64, error)
	Drop(ctx context.Context, name string) error
	CountDocuments(ctx context.Context, name string) (int64, error)
	Exists(ctx context.Context, name string) (bool, error)
	ListTenantCollections(ctx context.Context) ([]string, error)
}
