package testutils

import (
	"time"

	"tenant-portal-backend/internal/database/models"
	"tenant-portal-backend/internal/slug"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FactorySet bundles the model factories
type FactorySet struct {
	Organization *OrganizationFactory
	Admin        *AdminFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Admin:        NewAdminFactory(),
	}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	now := time.Now().UTC()
	return &models.Organization{
		ID:             primitive.NewObjectID(),
		Name:           "Test Organization",
		Slug:           "test-organization",
		CollectionName: slug.CollectionName("test-organization"),
		AdminID:        primitive.NewObjectID(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithName sets a custom name on the organization and derives slug and
// collection name from it.
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	if s, err := slug.Normalize(name); err == nil {
		org.Slug = s
		org.CollectionName = slug.CollectionName(s)
	}
	return org
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates a test Admin with default values. The password hash is a
// bcrypt digest of "password".
func (f *AdminFactory) Create() *models.Admin {
	return &models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		CreatedAt:    time.Now().UTC(),
	}
}

// WithEmail sets a custom email for the admin
func (f *AdminFactory) WithEmail(email string) *models.Admin {
	admin := f.Create()
	admin.Email = email
	return admin
}
