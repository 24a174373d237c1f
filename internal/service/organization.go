package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tenant-portal-backend/internal/database/models"
	apperrors "tenant-portal-backend/internal/errors"
	"tenant-portal-backend/internal/logger"
	"tenant-portal-backend/internal/repository"
	"tenant-portal-backend/internal/slug"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationService is the tenant provisioning engine. It orchestrates
// create/rename/delete across the directory and the per-tenant collections.
// Each operation is a sequence of independent single-document writes; there
// is no transaction wrapping the sequence and no rollback on partial
// failure. AuditStorage makes the resulting orphans detectable.
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	admins    repository.AdminRepositoryInterface
	tenants   repository.TenantStoreRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new tenant provisioning engine
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	admins repository.AdminRepositoryInterface,
	tenants repository.TenantStoreRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:      orgs,
		admins:    admins,
		tenants:   tenants,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to provision an organization.
// PasswordHash is supplied already hashed by the caller.
type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=3,max=50"`
	Email            string `json:"email" validate:"required,email"`
	PasswordHash     string `json:"-" validate:"required"`
}

// OrganizationResponse is the materialized view of a provisioned organization
type OrganizationResponse struct {
	ID               string `json:"id"`
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug"`
	CollectionName   string `json:"collection_name"`
	AdminEmail       string `json:"admin_email"`
}

// RenameResult reports the outcome of a rename, including the old collection
// that survives the operation.
type RenameResult struct {
	OrganizationSlug string `json:"organization_slug"`
	OldCollection    string `json:"old_collection"`
	NewCollection    string `json:"new_collection"`
	DocumentsCopied  int64  `json:"documents_copied"`
}

// MissingStorage identifies an organization whose tenant collection is gone
type MissingStorage struct {
	OrganizationSlug string `json:"organization_slug"`
	CollectionName   string `json:"collection_name"`
}

// StorageAuditResponse lists the detectable partial-failure states: tenant
// collections no organization references (left by renames or interrupted
// creates) and organizations whose collection disappeared.
type StorageAuditResponse struct {
	OrphanedCollections []string         `json:"orphaned_collections"`
	MissingCollections  []MissingStorage `json:"missing_collections"`
}

// Create provisions a new organization: tenant collection first, then the
// administrator, then the organization record, then the admin back-link.
// A crash mid-sequence leaves an orphaned collection or administrator rather
// than a dangling organization reference.
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orgSlug, err := slug.Normalize(req.OrganizationName)
	if err != nil {
		return nil, err
	}

	existing, err := s.orgs.GetBySlug(ctx, orgSlug)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	collectionName := slug.CollectionName(orgSlug)
	if err := s.tenants.Provision(ctx, collectionName); err != nil {
		return nil, fmt.Errorf("failed to provision tenant storage: %w", err)
	}

	now := time.Now().UTC()
	admin := &models.Admin{
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		CreatedAt:    now,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create administrator: %w", err)
	}

	org := &models.Organization{
		Name:           req.OrganizationName,
		Slug:           orgSlug,
		CollectionName: collectionName,
		AdminID:        admin.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		// The unique slug index catches the race the read check above admits.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if err := s.admins.SetOrganization(ctx, admin.ID, org.ID); err != nil {
		return nil, fmt.Errorf("failed to back-link administrator: %w", err)
	}

	logger.WithContext(ctx).WithSlug(orgSlug).WithField("collection", collectionName).
		Info("organization provisioned")

	return &OrganizationResponse{
		ID:               org.ID.Hex(),
		OrganizationName: org.Name,
		OrganizationSlug: org.Slug,
		CollectionName:   org.CollectionName,
		AdminEmail:       admin.Email,
	}, nil
}

// GetByName resolves an organization by display name (normalized to its slug)
func (s *OrganizationService) GetByName(ctx context.Context, name string) (*OrganizationResponse, error) {
	orgSlug, err := slug.Normalize(name)
	if err != nil {
		return nil, err
	}

	org, err := s.orgs.GetBySlug(ctx, orgSlug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	adminEmail := ""
	if admin, err := s.admins.GetByID(ctx, org.AdminID); err == nil {
		adminEmail = admin.Email
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to get administrator: %w", err)
	}

	return &OrganizationResponse{
		ID:               org.ID.Hex(),
		OrganizationName: org.Name,
		OrganizationSlug: org.Slug,
		CollectionName:   org.CollectionName,
		AdminEmail:       adminEmail,
	}, nil
}

// GetByID resolves an organization by its record id, as carried in token
// claims. Stale claims referencing a deleted organization map to not-found.
func (s *OrganizationService) GetByID(ctx context.Context, id string) (*OrganizationResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	org, err := s.orgs.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	adminEmail := ""
	if admin, err := s.admins.GetByID(ctx, org.AdminID); err == nil {
		adminEmail = admin.Email
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to get administrator: %w", err)
	}

	return &OrganizationResponse{
		ID:               org.ID.Hex(),
		OrganizationName: org.Name,
		OrganizationSlug: org.Slug,
		CollectionName:   org.CollectionName,
		AdminEmail:       adminEmail,
	}, nil
}

// Rename moves an organization to a new name and slug, copying every tenant
// document into the collection derived from the new slug. Document identity
// is not preserved across the copy. The old collection is left in place; it
// is reclaimable only through AuditStorage and PurgeOrphan.
func (s *OrganizationService) Rename(ctx context.Context, currentSlug, newName string) (*RenameResult, error) {
	newSlug, err := slug.Normalize(newName)
	if err != nil {
		return nil, err
	}

	taken, err := s.orgs.GetBySlug(ctx, newSlug)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check new slug: %w", err)
	}
	if taken != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org, err := s.orgs.GetBySlug(ctx, currentSlug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	oldCollection := org.CollectionName
	newCollection := slug.CollectionName(newSlug)

	copied, err := s.tenants.CopyDocuments(ctx, oldCollection, newCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to copy tenant documents: %w", err)
	}

	org.Name = newName
	org.Slug = newSlug
	org.CollectionName = newCollection
	org.UpdatedAt = time.Now().UTC()
	if err := s.orgs.Update(ctx, org); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	logger.WithContext(ctx).WithSlug(newSlug).WithFields(map[string]interface{}{
		"old_collection": oldCollection,
		"new_collection": newCollection,
		"copied":         copied,
	}).Info("organization renamed")

	return &RenameResult{
		OrganizationSlug: newSlug,
		OldCollection:    oldCollection,
		NewCollection:    newCollection,
		DocumentsCopied:  copied,
	}, nil
}

// Delete destroys an organization, its administrator and its tenant
// collection. Only the owning administrator may delete. The three deletions
// run in order with no transaction around them.
func (s *OrganizationService) Delete(ctx context.Context, orgSlug, requesterAdminID string) error {
	org, err := s.orgs.GetBySlug(ctx, orgSlug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if org.AdminID.Hex() != requesterAdminID {
		return apperrors.ErrNotOrganizationOwner
	}

	if err := s.tenants.Drop(ctx, org.CollectionName); err != nil {
		return fmt.Errorf("failed to drop tenant storage: %w", err)
	}
	if err := s.admins.Delete(ctx, org.AdminID); err != nil {
		return fmt.Errorf("failed to delete administrator: %w", err)
	}
	if err := s.orgs.Delete(ctx, org.ID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	logger.WithContext(ctx).WithSlug(orgSlug).Info("organization deleted")

	return nil
}

// AuditStorage reports the partial-failure residue the non-transactional
// sequences can leave behind.
func (s *OrganizationService) AuditStorage(ctx context.Context) (*StorageAuditResponse, error) {
	orgs, err := s.orgs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	referenced := make(map[string]string, len(orgs))
	for _, org := range orgs {
		referenced[org.CollectionName] = org.Slug
	}

	collections, err := s.tenants.ListTenantCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant collections: %w", err)
	}

	present := make(map[string]bool, len(collections))
	audit := &StorageAuditResponse{
		OrphanedCollections: []string{},
		MissingCollections:  []MissingStorage{},
	}
	for _, name := range collections {
		present[name] = true
		if _, ok := referenced[name]; !ok {
			audit.OrphanedCollections = append(audit.OrphanedCollections, name)
		}
	}
	for _, org := range orgs {
		if !present[org.CollectionName] {
			audit.MissingCollections = append(audit.MissingCollections, MissingStorage{
				OrganizationSlug: org.Slug,
				CollectionName:   org.CollectionName,
			})
		}
	}

	return audit, nil
}

// PurgeOrphan drops a tenant collection no organization references. It
// refuses to touch a referenced collection or anything outside the tenant
// namespace.
func (s *OrganizationService) PurgeOrphan(ctx context.Context, collectionName string) error {
	if !slug.IsTenantCollection(collectionName) {
		return apperrors.NewValidationError("collection", "not a tenant collection")
	}

	orgs, err := s.orgs.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}
	for _, org := range orgs {
		if org.CollectionName == collectionName {
			return apperrors.ErrCollectionInUse
		}
	}

	exists, err := s.tenants.Exists(ctx, collectionName)
	if err != nil {
		return fmt.Errorf("failed to check tenant collection: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("tenant collection")
	}

	if err := s.tenants.Drop(ctx, collectionName); err != nil {
		return fmt.Errorf("failed to drop tenant collection: %w", err)
	}

	logger.WithContext(ctx).WithField("collection", collectionName).Info("orphaned tenant collection dropped")

	return nil
}
