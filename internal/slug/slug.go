package slug

import (
	"regexp"
	"strings"

	apperrors "tenant-portal-backend/internal/errors"
)

// CollectionPrefix is prepended to a slug to form the tenant collection name.
const CollectionPrefix = "tenant_"

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	validSlug    = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Normalize derives the canonical slug for an organization display name.
// The result is lower-cased, restricted to [a-z0-9-] and stable: normalizing
// an already-normalized name returns it unchanged. Names that reduce to an
// empty string are rejected.
func Normalize(name string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	s := strings.Trim(nonSlugChars.ReplaceAllString(lower, "-"), "-")
	if s == "" || !validSlug.MatchString(s) {
		return "", apperrors.ErrInvalidOrganizationName
	}
	return s, nil
}

// CollectionName returns the name of the tenant storage collection for a slug.
func CollectionName(slug string) string {
	return CollectionPrefix + slug
}

// IsTenantCollection reports whether a collection name belongs to the
// per-tenant storage namespace.
func IsTenantCollection(name string) bool {
	return strings.HasPrefix(name, CollectionPrefix)
}
