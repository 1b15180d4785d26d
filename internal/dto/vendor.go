package dto

import "github.com/torislove/gomandap-server/internal/models"

// OnboardingRequest carries a vendor profile create/update. Email identifies
// the vendor; every other field is optional and only sent fields are written.
type OnboardingRequest struct {
	Email string `json:"email" binding:"required,email"`

	FullName     *string `json:"fullName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
	VendorType   *string `json:"vendorType,omitempty"`
	Description  *string `json:"description,omitempty"`
	Experience   *string `json:"experience,omitempty"`

	AddressLine1 *string `json:"addressLine1,omitempty"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	Village      *string `json:"village,omitempty"`
	Mandal       *string `json:"mandal,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Pincode      *string `json:"pincode,omitempty"`
	MapsLink     *string `json:"mapsLink,omitempty"`

	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	Details models.Details `json:"details,omitempty"`

	OnboardingStep      *int  `json:"onboardingStep,omitempty"`
	OnboardingCompleted *bool `json:"onboardingCompleted,omitempty"`
}
