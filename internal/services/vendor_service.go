package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/torislove/gomandap-server/internal/dto"
	"github.com/torislove/gomandap-server/internal/geo"
	"github.com/torislove/gomandap-server/internal/logging"
	"github.com/torislove/gomandap-server/internal/models"
	"github.com/torislove/gomandap-server/internal/repository"
)

// VendorService owns the vendor profile write path: onboarding upserts,
// detail-bag sanitization and coordinate refresh from map links.
type VendorService struct {
	repo repository.VendorRepository
}

func NewVendorService(repo repository.VendorRepository) *VendorService {
	return &VendorService{repo: repo}
}

// Onboard creates or updates a vendor profile keyed by email. Detail keys
// outside the category allow-list are dropped before persisting. The map
// link is re-parsed into coordinates only when it actually changed, so
// unrelated profile edits never touch the stored location.
func (s *VendorService) Onboard(ctx context.Context, req *dto.OnboardingRequest) (*models.Vendor, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrVendorNotFound) {
		return nil, err
	}

	set := primitive.M{}
	unset := primitive.M{}

	setString(set, "fullName", req.FullName)
	setString(set, "phone", req.Phone)
	setString(set, "businessName", req.BusinessName)
	setString(set, "vendorType", req.VendorType)
	setString(set, "description", req.Description)
	setString(set, "experience", req.Experience)
	setString(set, "addressLine1", req.AddressLine1)
	setString(set, "addressLine2", req.AddressLine2)
	setString(set, "village", req.Village)
	setString(set, "mandal", req.Mandal)
	setString(set, "city", req.City)
	setString(set, "state", req.State)
	setString(set, "pincode", req.Pincode)

	if req.MinPrice != nil {
		set["minPrice"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		set["maxPrice"] = *req.MaxPrice
	}
	if req.OnboardingStep != nil {
		set["onboardingStep"] = *req.OnboardingStep
	}
	if req.OnboardingCompleted != nil {
		set["onboardingCompleted"] = *req.OnboardingCompleted
	}

	if req.Details != nil {
		category := ""
		if req.VendorType != nil {
			category = *req.VendorType
		} else if existing != nil {
			category = existing.VendorType
		}
		set["details"] = models.FilterDetails(category, req.Details)
	}

	if req.MapsLink != nil {
		previous := ""
		if existing != nil {
			previous = existing.MapsLink
		}
		if *req.MapsLink != previous {
			set["mapsLink"] = *req.MapsLink
			if point, ok := geo.Extract(*req.MapsLink); ok {
				set["coordinates"] = models.Coordinates{Lat: point.Lat, Lon: point.Lon}
			} else {
				// Extraction failed: the old location no longer describes
				// this link, so remove it rather than keep a stale pair.
				unset["coordinates"] = ""
				l := logging.Ctx(ctx)
				l.Info().Str("email", req.Email).Msg("map link did not yield coordinates")
			}
		}
	}

	return s.repo.UpsertByEmail(ctx, req.Email, set, unset)
}

// List returns all vendors, newest first.
func (s *VendorService) List(ctx context.Context) ([]models.Vendor, error) {
	return s.repo.List(ctx)
}

// GetByEmail looks up one vendor profile.
func (s *VendorService) GetByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	return s.repo.FindByEmail(ctx, email)
}

func setString(set primitive.M, key string, value *string) {
	if value != nil {
		set[key] = *value
	}
}
