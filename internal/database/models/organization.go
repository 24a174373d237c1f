package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is the directory record for one tenant. The slug is derived
// from Name and unique across the system; CollectionName is always the
// tenant collection derived from the slug and is 1:1 with the record.
type Organization struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Slug           string             `bson:"slug" json:"slug"`
	CollectionName string             `bson:"collection_name" json:"collection_name"`
	AdminID        primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
