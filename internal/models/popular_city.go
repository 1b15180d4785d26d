package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopularCity is an admin-curated city shown on the discovery landing page.
// The featured-vendor refresher precomputes a vendor list per popular city.
type PopularCity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	State     string             `bson:"state,omitempty" json:"state,omitempty"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
