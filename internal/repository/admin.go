package repository

import (
	"context"

	"tenant-portal-backend/internal/database"
	"tenant-portal-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository handles directory operations for administrators
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new administrator repository
func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{collection: db.Master.Collection(database.CollectionAdmins)}
}

// Create inserts a new administrator record
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	res, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = id
	}
	return nil
}

// GetByID retrieves an administrator by ID
func (r *AdminRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves an administrator by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// SetOrganization back-links an administrator to the organization it owns
func (r *AdminRepository) SetOrganization(ctx context.Context, adminID, orgID primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, adminID, bson.M{"$set": bson.M{"organization_id": orgID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an administrator record
func (r *AdminRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
