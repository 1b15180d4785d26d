package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/torislove/gomandap-server/internal/handlers"
	"github.com/torislove/gomandap-server/internal/middleware"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, logger zerolog.Logger) {
	// Apply global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// API v1 group
	v1 := r.Group("/api/v1")

	vendorRouterV1 := v1.Group("/vendors")
	{
		vendorRouterV1.GET("/search", h.SearchVendors)
		vendorRouterV1.GET("/featured", h.GetFeaturedVendors)

		vendorRouterV1.POST("/onboarding", h.OnboardVendor)

		vendorRouterV1.GET("/", h.GetVendors)
		vendorRouterV1.GET("/:email", h.GetVendorByEmail)
	}

	// Health check
	r.GET("/health", h.Health)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
