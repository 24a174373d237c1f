package auth

import (
	"context"
	"errors"
	"net/http"

	"tenant-portal-backend/internal/database/models"
	apperrors "tenant-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminDirectory is the administrator lookup the login flow needs
type AdminDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
	admins  AdminDirectory
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, admins AdminDirectory) *AuthHandler {
	return &AuthHandler{service: service, admins: admins}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the issued token
type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type" example:"bearer"`
	ExpiresInSeconds int64  `json:"expires_in_seconds" example:"3600"`
}

// Login handles POST /auth/login
// @Summary Authenticate an administrator
// @Description Verify email and password and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Administrator credentials"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	admin, err := h.admins.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up administrator"})
		return
	}

	ok, err := h.service.VerifyPassword(req.Password, admin.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
		return
	}

	orgID := ""
	if !admin.OrganizationID.IsZero() {
		orgID = admin.OrganizationID.Hex()
	}

	token, err := h.service.IssueToken(admin.ID.Hex(), orgID, admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(h.service.config.TokenTTL.Seconds()),
	})
}
