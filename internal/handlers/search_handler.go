package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/torislove/gomandap-server/internal/search"
	"github.com/torislove/gomandap-server/internal/utils"
)

// GET /api/v1/vendors/search
//
// Full search surface: category, city, lat/lon/radius, price bounds,
// capacity, amenities and category facets. Parameter parsing is lenient and
// a down store degrades to an empty success, so this endpoint only returns
// non-200 on an internal defect.
func (h *Handler) SearchVendors(c *gin.Context) {
	query := search.ParseValues(c.Request.URL.Query())

	result, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponse(c, 500, "Search failed")
		return
	}

	c.JSON(200, result)
}
