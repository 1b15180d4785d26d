package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/torislove/gomandap-server/internal/models"
)

// ErrVendorNotFound is returned when no vendor matches the lookup.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository is the vendor store boundary. Search returns projections
// with credentials and push tokens excluded.
type VendorRepository interface {
	Search(ctx context.Context, filter primitive.M) ([]models.Vendor, error)
	List(ctx context.Context) ([]models.Vendor, error)
	FindByEmail(ctx context.Context, email string) (*models.Vendor, error)
	UpsertByEmail(ctx context.Context, email string, set primitive.M, unset primitive.M) (*models.Vendor, error)
}

// CityRepository lists the admin-curated popular cities used by the
// featured-vendor refresher.
type CityRepository interface {
	ActiveCities(ctx context.Context) ([]models.PopularCity, error)
}
