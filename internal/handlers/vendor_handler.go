package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/torislove/gomandap-server/internal/dto"
	"github.com/torislove/gomandap-server/internal/repository"
	"github.com/torislove/gomandap-server/internal/utils"
)

// POST /api/v1/vendors/onboarding
func (h *Handler) OnboardVendor(c *gin.Context) {
	// 1. Parse and validate request
	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	// 2. Call service layer
	vendor, err := h.vendors.Onboard(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to save vendor: "+err.Error())
		return
	}

	// 3. Return success response
	utils.SuccessResponse(c, vendor)
}

// GET /api/v1/vendors
func (h *Handler) GetVendors(c *gin.Context) {
	vendors, err := h.vendors.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve vendors: "+err.Error())
		return
	}

	c.JSON(200, dto.ListResponse{
		Success: true,
		Count:   len(vendors),
		Data:    vendors,
	})
}

// GET /api/v1/vendors/:email
func (h *Handler) GetVendorByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		utils.ErrorResponse(c, 400, "Email parameter is missing")
		return
	}

	vendor, err := h.vendors.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			utils.ErrorResponse(c, 404, "Vendor not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to retrieve vendor: "+err.Error())
		return
	}

	utils.SuccessResponse(c, vendor)
}

// GET /api/v1/vendors/featured?city=
func (h *Handler) GetFeaturedVendors(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.ErrorResponse(c, 400, "Query parameter 'city' is missing")
		return
	}

	vendors, err := h.featured.GetFeatured(c.Request.Context(), city)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to retrieve featured vendors: "+err.Error())
		return
	}

	c.JSON(200, dto.ListResponse{
		Success: true,
		Count:   len(vendors),
		Data:    vendors,
	})
}
