package listing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/models"
)

// GetFeaturedListings godoc
// @Summary Get featured listings
// @Description Returns the listings flagged for the landing page carousel, newest first
// @Tags Store - Listings
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/listings/featured [get]
func GetFeaturedListings(c *gin.Context) {
	featured := make([]models.Car, 0)
	for _, car := range config.Catalog.All() {
		if car.Featured {
			featured = append(featured, car)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured listings fetched", featured))
}
