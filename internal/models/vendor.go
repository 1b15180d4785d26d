package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor categories. A vendor belongs to exactly one.
const (
	CategoryVenue         = "venue"
	CategoryCatering      = "catering"
	CategoryDecor         = "decor"
	CategoryPhotography   = "photography"
	CategoryEntertainment = "entertainment"
)

// Coordinates is a validated lat/lon pair. It only ever lives embedded in a
// Vendor (or a query origin); absence of the field means "location unknown".
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

// Vendor is a business profile in the marketplace. The search path treats it
// read-only; writes happen through the onboarding path.
type Vendor struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`

	BusinessName string `bson:"businessName,omitempty" json:"businessName,omitempty"`
	VendorType   string `bson:"vendorType,omitempty" json:"vendorType,omitempty"`
	VendorCode   string `bson:"vendorCode,omitempty" json:"vendorCode,omitempty"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	Experience   string `bson:"experience,omitempty" json:"experience,omitempty"`

	// Address. Location is not normalized to one canonical field: city-style
	// searches match any of city, village, mandal or addressLine1.
	AddressLine1 string `bson:"addressLine1,omitempty" json:"addressLine1,omitempty"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	Village      string `bson:"village,omitempty" json:"village,omitempty"`
	Mandal       string `bson:"mandal,omitempty" json:"mandal,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode      string `bson:"pincode,omitempty" json:"pincode,omitempty"`

	// MapsLink is the raw map link the vendor pasted. Coordinates is set by
	// the onboarding path whenever MapsLink changes and extraction succeeds,
	// and removed when extraction fails.
	MapsLink    string       `bson:"mapsLink,omitempty" json:"mapsLink,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`

	Logo    string   `bson:"logo,omitempty" json:"logo,omitempty"`
	Gallery []string `bson:"gallery,omitempty" json:"gallery,omitempty"`

	// Root-level price bounds, indexed for range queries. Details may carry
	// additional category-specific price fields (e.g. perPlateVeg).
	MinPrice float64 `bson:"minPrice,omitempty" json:"minPrice,omitempty"`
	MaxPrice float64 `bson:"maxPrice,omitempty" json:"maxPrice,omitempty"`

	// Details is the category-specific attribute bag. Keys are filtered
	// against the category allow-list at write time.
	Details Details `bson:"details,omitempty" json:"details,omitempty"`

	Priority      int        `bson:"priority,omitempty" json:"priority,omitempty"`
	IsSponsored   bool       `bson:"isSponsored,omitempty" json:"isSponsored,omitempty"`
	PromotedUntil *time.Time `bson:"promotedUntil,omitempty" json:"promotedUntil,omitempty"`

	IsVerified          bool `bson:"isVerified" json:"isVerified"`
	OnboardingStep      int  `bson:"onboardingStep,omitempty" json:"onboardingStep,omitempty"`
	OnboardingCompleted bool `bson:"onboardingCompleted" json:"onboardingCompleted"`

	FCMTokens []string `bson:"fcmTokens,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsDemo reports whether the vendor is a seeded demo account. Demo accounts
// never appear in search results.
func (v *Vendor) IsDemo() bool {
	return strings.Contains(strings.ToLower(v.BusinessName), "demo")
}
