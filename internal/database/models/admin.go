package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is the owning administrator of an organization. Email is unique
// system-wide and immutable after creation. OrganizationID is back-filled
// once the organization record exists.
type Admin struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password_hash" json:"-"`
	OrganizationID primitive.ObjectID `bson:"organization_id,omitempty" json:"organization_id,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
