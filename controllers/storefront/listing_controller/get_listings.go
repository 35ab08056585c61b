package listing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/listing"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// GetListings godoc
// @Summary Get the listing page
// @Description Returns the session's filtered and sorted view of the catalog. A brand or q query param is merged into the session filters before filtering.
// @Tags Store - Listings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param brand query string false "Seed a brand filter from navigation"
// @Param q query string false "Seed the free-text search"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/listings [get]
func GetListings(c *gin.Context) {
	sess := middleware.GetSession(c)

	// Step 1: Merge navigation params into the session filters. The
	// merge is additive, so a seeded brand survives later panel picks.
	if err := sess.UpdateFilters(func(f *models.CarFilters) error {
		*f = listing.SeedFromQuery(*f, c.Query("brand"), c.Query("q"))
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update filters"))
		return
	}

	filters := sess.Filters()
	sort := sess.Sort()

	// Step 2: Materialize the view from a catalog snapshot.
	view := listing.View(config.Catalog.All(), filters, sort)

	// Step 3: Page it.
	page, limit := parsePagination(c)
	cars, meta := paginate(view, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Listings fetched successfully", gin.H{
		"cars":          cars,
		"sort":          sort,
		"activeFilters": listing.ActiveFilterCount(filters),
	}, meta))
}
