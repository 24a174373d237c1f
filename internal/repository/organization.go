package repository

import (
	"context"

	"tenant-portal-backend/internal/database"
	"tenant-portal-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationRepository handles directory operations for organizations
type OrganizationRepository struct {
	collection *mongo.Collection
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *database.DB) *OrganizationRepository {
	return &OrganizationRepository{collection: db.Master.Collection(database.CollectionOrganizations)}
}

// Create inserts a new organization record. The unique slug index turns a
// concurrent insert for the same slug into a duplicate-key error.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	res, err := r.collection.InsertOne(ctx, org)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		org.ID = id
	}
	return nil
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by its canonical slug
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves every organization record
func (r *OrganizationRepository) GetAll(ctx context.Context) ([]models.Organization, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update rewrites the mutable fields of an organization record
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	update := bson.M{"$set": bson.M{
		"name":            org.Name,
		"slug":            org.Slug,
		"collection_name": org.CollectionName,
		"updated_at":      org.UpdatedAt,
	}}
	res, err := r.collection.UpdateByID(ctx, org.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an organization record
func (r *OrganizationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
