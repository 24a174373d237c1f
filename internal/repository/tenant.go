package repository

import (
	"context"
	"time"

	"tenant-portal-backend/internal/database"
	"tenant-portal-backend/internal/database/models"
	"tenant-portal-backend/internal/slug"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TenantStoreRepository manages the per-tenant storage collections living
// alongside the directory collections in the master database.
type TenantStoreRepository struct {
	db *mongo.Database
}

// NewTenantStoreRepository creates a new tenant store repository
func NewTenantStoreRepository(db *database.DB) *TenantStoreRepository {
	return &TenantStoreRepository{db: db.Master}
}

// Provision creates a tenant collection by seeding it with the schema-version
// sentinel. Mongo materializes the collection on first insert, so this is a
// single atomic document write.
func (r *TenantStoreRepository) Provision(ctx context.Context, name string) error {
	sentinel := models.TenantSentinel{
		SchemaVersion: models.TenantSchemaVersion,
		CreatedAt:     time.Now().UTC(),
	}
	_, err := r.db.Collection(name).InsertOne(ctx, sentinel)
	return err
}

// CopyDocuments copies every document from src into dst, one at a time.
// Identity fields are dropped so dst documents get fresh ids; callers holding
// old document ids must not expect them to survive the copy. The walk honors
// ctx cancellation, and a restart after interruption simply re-runs the copy.
func (r *TenantStoreRepository) CopyDocuments(ctx context.Context, src, dst string) (int64, error) {
	cursor, err := r.db.Collection(src).Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var copied int64
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return copied, err
		}
		delete(doc, "_id")
		if _, err := r.db.Collection(dst).InsertOne(ctx, doc); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, cursor.Err()
}

// Drop destroys a tenant collection and everything in it
func (r *TenantStoreRepository) Drop(ctx context.Context, name string) error {
	return r.db.Collection(name).Drop(ctx)
}

// CountDocuments returns the number of documents in a tenant collection,
// sentinel included.
func (r *TenantStoreRepository) CountDocuments(ctx context.Context, name string) (int64, error) {
	return r.db.Collection(name).CountDocuments(ctx, bson.M{})
}

// Exists reports whether a collection with the given name is present
func (r *TenantStoreRepository) Exists(ctx context.Context, name string) (bool, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ListTenantCollections returns every collection in the tenant namespace.
// Used by the storage audit to find collections no organization references.
func (r *TenantStoreRepository) ListTenantCollections(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var tenants []string
	for _, name := range names {
		if slug.IsTenantCollection(name) {
			tenants = append(tenants, name)
		}
	}
	return tenants, nil
}
