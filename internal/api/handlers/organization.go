package handlers

import (
	"errors"
	"net/http"

	"tenant-portal-backend/internal/auth"
	apperrors "tenant-portal-backend/internal/errors"
	"tenant-portal-backend/internal/service"
	"tenant-portal-backend/internal/slug"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationHandler handles HTTP requests for tenant organizations
type OrganizationHandler struct {
	service     service.OrganizationServiceInterface
	credentials *auth.AuthService
	admins      auth.AdminDirectory
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(svc service.OrganizationServiceInterface, credentials *auth.AuthService, admins auth.AdminDirectory) *OrganizationHandler {
	return &OrganizationHandler{service: svc, credentials: credentials, admins: admins}
}

// CreateOrganizationRequest represents the create request body
type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" binding:"required,min=3,max=50"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
}

// UpdateOrganizationRequest represents the rename request body
type UpdateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" binding:"required,min=3,max=50"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
}

// DeleteOrganizationRequest represents the delete request body
type DeleteOrganizationRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
}

// CreateOrganization handles POST /org/create
// @Summary Provision a new organization
// @Description Create an organization with its dedicated tenant storage and owning administrator
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body or name"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /org/create [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	hash, err := h.credentials.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	org, err := h.service.Create(c.Request.Context(), &service.CreateOrganizationRequest{
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		PasswordHash:     hash,
	})
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /org/get
// @Summary Look up an organization by name
// @Description Resolve an organization by display name (normalized to its slug)
// @Tags organizations
// @Produce json
// @Param organization_name query string true "Organization name"
// @Success 200 {object} service.OrganizationResponse "Organization found"
// @Failure 400 {object} map[string]interface{} "Invalid organization name"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /org/get [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	name := c.Query("organization_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_name query parameter is required"})
		return
	}

	org, err := h.service.GetByName(c.Request.Context(), name)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /org/update
// @Summary Rename the caller's organization
// @Description Rename the authenticated administrator's organization, migrating its tenant storage
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body UpdateOrganizationRequest true "New organization name and admin credentials"
// @Success 200 {object} service.RenameResult "Organization renamed"
// @Failure 400 {object} map[string]interface{} "Invalid request body or name"
// @Failure 401 {object} map[string]interface{} "Invalid admin credentials"
// @Failure 403 {object} map[string]interface{} "Credentials do not match the caller"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "New name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /org/update [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// Renames re-verify the admin's credentials on top of the bearer token.
	admin, err := h.admins.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up administrator"})
		return
	}

	ok, err := h.credentials.VerifyPassword(req.Password, admin.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
		return
	}

	adminID, _ := auth.GetAdminID(c)
	if adminID != admin.ID.Hex() {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotOrganizationOwner.Error()})
		return
	}

	orgID, _ := auth.GetOrgID(c)
	org, err := h.service.GetByID(c.Request.Context(), orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization", "details": err.Error()})
		return
	}

	result, err := h.service.Rename(c.Request.Context(), org.OrganizationSlug, req.OrganizationName)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename organization", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteOrganization handles DELETE /org/delete
// @Summary Delete the caller's organization
// @Description Destroy the organization, its administrator and its tenant storage
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body DeleteOrganizationRequest true "Organization name"
// @Success 200 {object} map[string]interface{} "Organization deleted"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own this organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /org/delete [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	var req DeleteOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	orgID, _ := auth.GetOrgID(c)
	org, err := h.service.GetByID(c.Request.Context(), orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotOrganizationOwner.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization", "details": err.Error()})
		return
	}

	requestedSlug, err := slug.Normalize(req.OrganizationName)
	if err != nil || requestedSlug != org.OrganizationSlug {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotOrganizationOwner.Error()})
		return
	}

	adminID, _ := auth.GetAdminID(c)
	if err := h.service.Delete(c.Request.Context(), org.OrganizationSlug, adminID); err != nil {
		switch {
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted"})
}

// AuditStorage handles GET /org/storage/audit
// @Summary Audit tenant storage
// @Description List orphaned tenant collections and organizations with missing storage
// @Tags storage
// @Produce json
// @Success 200 {object} service.StorageAuditResponse "Audit results"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /org/storage/audit [get]
func (h *OrganizationHandler) AuditStorage(c *gin.Context) {
	audit, err := h.service.AuditStorage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to audit storage", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, audit)
}

// PurgeOrphan handles DELETE /org/storage/orphans/:collection
// @Summary Drop an orphaned tenant collection
// @Description Drop a tenant collection no organization references (e.g. left behind by a rename)
// @Tags storage
// @Produce json
// @Param collection path string true "Tenant collection name"
// @Success 200 {object} map[string]interface{} "Collection dropped"
// @Failure 400 {object} map[string]interface{} "Not a tenant collection"
// @Failure 404 {object} map[string]interface{} "Collection not found"
// @Failure 409 {object} map[string]interface{} "Collection is still referenced"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /org/storage/orphans/{collection} [delete]
func (h *OrganizationHandler) PurgeOrphan(c *gin.Context) {
	collection := c.Param("collection")

	if err := h.service.PurgeOrphan(c.Request.Context(), collection); err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge collection", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tenant collection dropped", "collection": collection})
}
