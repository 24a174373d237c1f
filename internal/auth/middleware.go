package auth

import (
	"context"
	"errors"
	"net/http"

	apperrors "tenant-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides bearer-token authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth verifies the bearer token and sets the principal on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.service.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID())
		c.Set("org_id", claims.OrgID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		// Propagate identity into the request context so downstream
		// logging sees it.
		ctx := context.WithValue(c.Request.Context(), "email", claims.Email)
		ctx = context.WithValue(ctx, "admin_id", claims.AdminID())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalAuth sets the principal when a valid token is present but never rejects
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.service.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			if !errors.Is(err, apperrors.ErrMissingCredentials) &&
				!errors.Is(err, apperrors.ErrTokenInvalid) &&
				!errors.Is(err, apperrors.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		c.Set("admin_id", claims.AdminID())
		c.Set("org_id", claims.OrgID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// GetAdminID is a helper function to extract the administrator id from context
func GetAdminID(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		return "", false
	}

	id, ok := adminID.(string)
	return id, ok
}

// GetOrgID is a helper function to extract the organization id from context
func GetOrgID(c *gin.Context) (string, bool) {
	orgID, exists := c.Get("org_id")
	if !exists {
		return "", false
	}

	id, ok := orgID.(string)
	return id, ok
}

// GetEmail is a helper function to extract the authenticated email from context
func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full claims from context
func GetAuthClaims(c *gin.Context) (*TokenClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	tokenClaims, ok := claims.(*TokenClaims)
	return tokenClaims, ok
}
