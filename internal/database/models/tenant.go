package models

import (
	"time"
)

// TenantSchemaVersion is stamped into every tenant collection on provisioning.
const TenantSchemaVersion = 1

// TenantSentinel is the first document written to a freshly provisioned
// tenant collection. The underscore-prefixed keys keep it out of the way of
// tenant-supplied documents.
type TenantSentinel struct {
	SchemaVersion int       `bson:"_schema_version"`
	CreatedAt     time.Time `bson:"_created_at"`
}
