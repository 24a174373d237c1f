package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "tenant-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims represents the verified payload of an access token. Subject is
// the administrator id; claims are returned verbatim on verification, so
// callers must re-check that the referenced admin and organization still
// exist (tokens are stateless and not revocation-aware).
type TokenClaims struct {
	OrgID string `json:"org_id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminID returns the administrator id the token was issued for
func (c *TokenClaims) AdminID() string {
	return c.Subject
}

// AuthService provides password hashing and token issuance/verification
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// HashPassword produces a one-way bcrypt hash of the password
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a stored hash. A mismatch is not
// an error; only an unreadable stored hash is.
func (s *AuthService) VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, apperrors.ErrCorruptPasswordHash
}

// IssueToken creates a signed token binding an administrator to an
// organization and email, expiring after the configured TTL.
func (s *AuthService) IssueToken(adminID, orgID, email string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		OrgID: orgID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken verifies signature and expiry and returns the embedded claims
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrTokenInvalid
}

// Authenticate extracts and verifies a bearer token from a raw Authorization
// header value, producing the authenticated principal.
func (s *AuthService) Authenticate(rawHeaderValue string) (*TokenClaims, error) {
	if rawHeaderValue == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	tokenString := strings.TrimPrefix(rawHeaderValue, "Bearer ")
	if tokenString == rawHeaderValue || tokenString == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	return s.ValidateToken(tokenString)
}
