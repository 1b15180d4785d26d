package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/torislove/gomandap-server/internal/dto"
	"github.com/torislove/gomandap-server/internal/models"
	"github.com/torislove/gomandap-server/internal/repository"
)

type fakeVendorRepo struct {
	existing *models.Vendor

	lastSet   primitive.M
	lastUnset primitive.M
}

func (f *fakeVendorRepo) Search(ctx context.Context, filter primitive.M) ([]models.Vendor, error) {
	return nil, nil
}

func (f *fakeVendorRepo) List(ctx context.Context) ([]models.Vendor, error) {
	return nil, nil
}

func (f *fakeVendorRepo) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	if f.existing == nil {
		return nil, repository.ErrVendorNotFound
	}
	return f.existing, nil
}

func (f *fakeVendorRepo) UpsertByEmail(ctx context.Context, email string, set primitive.M, unset primitive.M) (*models.Vendor, error) {
	f.lastSet = set
	f.lastUnset = unset
	return &models.Vendor{Email: email}, nil
}

func strPtr(s string) *string { return &s }

func TestOnboardNewVendorExtractsCoordinates(t *testing.T) {
	repo := &fakeVendorRepo{}
	svc := NewVendorService(repo)

	_, err := svc.Onboard(context.Background(), &dto.OnboardingRequest{
		Email:        "owner@palace.example",
		BusinessName: strPtr("Royal Palace"),
		MapsLink:     strPtr("https://maps.example/@16.3067,80.4365"),
	})
	require.NoError(t, err)

	coords, ok := repo.lastSet["coordinates"].(models.Coordinates)
	require.True(t, ok)
	assert.Equal(t, 16.3067, coords.Lat)
	assert.Equal(t, 80.4365, coords.Lon)
	assert.Equal(t, "Royal Palace", repo.lastSet["businessName"])
}

func TestOnboardUnchangedMapsLinkSkipsExtraction(t *testing.T) {
	repo := &fakeVendorRepo{existing: &models.Vendor{
		Email:    "owner@palace.example",
		MapsLink: "https://maps.example/@16.3067,80.4365",
		Coordinates: &models.Coordinates{
			Lat: 16.3067, Lon: 80.4365,
		},
	}}
	svc := NewVendorService(repo)

	_, err := svc.Onboard(context.Background(), &dto.OnboardingRequest{
		Email:    "owner@palace.example",
		Phone:    strPtr("+919876543210"),
		MapsLink: strPtr("https://maps.example/@16.3067,80.4365"),
	})
	require.NoError(t, err)

	// Unrelated profile edit with the same link: coordinates untouched.
	assert.NotContains(t, repo.lastSet, "coordinates")
	assert.NotContains(t, repo.lastUnset, "coordinates")
	assert.Equal(t, "+919876543210", repo.lastSet["phone"])
}

func TestOnboardBadMapsLinkUnsetsCoordinates(t *testing.T) {
	repo := &fakeVendorRepo{existing: &models.Vendor{
		Email:       "owner@palace.example",
		MapsLink:    "https://maps.example/@16.3067,80.4365",
		Coordinates: &models.Coordinates{Lat: 16.3067, Lon: 80.4365},
	}}
	svc := NewVendorService(repo)

	_, err := svc.Onboard(context.Background(), &dto.OnboardingRequest{
		Email:    "owner@palace.example",
		MapsLink: strPtr("next to the bus stand"),
	})
	require.NoError(t, err)

	// A stale coordinate pair is worse than none.
	assert.NotContains(t, repo.lastSet, "coordinates")
	assert.Contains(t, repo.lastUnset, "coordinates")
}

func TestOnboardFiltersDetailsByCategory(t *testing.T) {
	repo := &fakeVendorRepo{}
	svc := NewVendorService(repo)

	_, err := svc.Onboard(context.Background(), &dto.OnboardingRequest{
		Email:      "chef@caterers.example",
		VendorType: strPtr(models.CategoryCatering),
		Details: models.Details{
			"cuisines":        []string{"Andhra Special"},
			"airConditioning": true, // venue key, not catering
		},
	})
	require.NoError(t, err)

	details, ok := repo.lastSet["details"].(models.Details)
	require.True(t, ok)
	assert.Contains(t, details, "cuisines")
	assert.NotContains(t, details, "airConditioning")
}

func TestOnboardUsesStoredCategoryForDetailFiltering(t *testing.T) {
	repo := &fakeVendorRepo{existing: &models.Vendor{
		Email:      "owner@palace.example",
		VendorType: models.CategoryVenue,
	}}
	svc := NewVendorService(repo)

	_, err := svc.Onboard(context.Background(), &dto.OnboardingRequest{
		Email: "owner@palace.example",
		Details: models.Details{
			"capacity": 800,
			"cuisines": []string{"Andhra Special"},
		},
	})
	require.NoError(t, err)

	details := repo.lastSet["details"].(models.Details)
	assert.Contains(t, details, "capacity")
	assert.NotContains(t, details, "cuisines")
}
