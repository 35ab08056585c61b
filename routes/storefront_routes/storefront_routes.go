package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/controllers/storefront/compare_controller"
	"github.com/pavich5/AutoMK/controllers/storefront/favorites_controller"
	"github.com/pavich5/AutoMK/controllers/storefront/filter_controller"
	"github.com/pavich5/AutoMK/controllers/storefront/listing_controller"
	"github.com/pavich5/AutoMK/controllers/storefront/session_controller"
)

// SetupStorefrontRoutes registers every storefront route on the shared
// /store group. Session resolution and rate limiting are applied by the
// caller on the group itself.
func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	store := rg.Group("/store")

	// ════════════════════════════════════════════════════════════
	// Listings
	// ════════════════════════════════════════════════════════════

	store.GET("/listings", listing_controller.GetListings)
	store.GET("/listings/featured", listing_controller.GetFeaturedListings)
	store.GET("/listings/:id", listing_controller.GetListingByID)
	store.POST("/listings", listing_controller.CreateListing)
	store.POST("/listings/images", listing_controller.UploadListingImages)

	// ════════════════════════════════════════════════════════════
	// Session filter + sort state
	// ════════════════════════════════════════════════════════════

	store.GET("/session/filters", session_controller.GetFilters)
	store.PATCH("/session/filters", session_controller.UpdateFilter)
	store.DELETE("/session/filters", session_controller.ClearFilters)
	store.PUT("/session/sort", session_controller.SetSort)

	// ════════════════════════════════════════════════════════════
	// Favorites
	// ════════════════════════════════════════════════════════════

	store.GET("/favorites", favorites_controller.GetFavorites)
	store.POST("/favorites/:id", favorites_controller.ToggleFavorite)

	// ════════════════════════════════════════════════════════════
	// Compare
	// ════════════════════════════════════════════════════════════

	store.GET("/compare", compare_controller.GetComparison)
	store.POST("/compare/:id", compare_controller.ToggleCompare)
	store.DELETE("/compare/:id", compare_controller.RemoveCompare)

	// ════════════════════════════════════════════════════════════
	// Filter metadata
	// ════════════════════════════════════════════════════════════

	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)
}
