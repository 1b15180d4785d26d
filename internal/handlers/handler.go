package handlers

import (
	"github.com/torislove/gomandap-server/internal/search"
	"github.com/torislove/gomandap-server/internal/services"
)

// Handler groups the HTTP handlers and their service dependencies.
type Handler struct {
	search   *search.Service
	vendors  *services.VendorService
	featured *services.FeaturedService
}

func New(searchSvc *search.Service, vendorSvc *services.VendorService, featuredSvc *services.FeaturedService) *Handler {
	return &Handler{
		search:   searchSvc,
		vendors:  vendorSvc,
		featured: featuredSvc,
	}
}
