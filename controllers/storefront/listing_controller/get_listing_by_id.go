package listing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// GetListingByID godoc
// @Summary Get one listing
// @Description Returns a single listing plus the session's favorite/compare flags for it
// @Tags Store - Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/listings/{id} [get]
func GetListingByID(c *gin.Context) {
	id := c.Param("id")

	car, ok := config.Catalog.Get(id)
	if !ok {
		// miss sends the client back to the listings page
		resp := models.ErrorResponse(c, "Listing not found")
		resp.Data = gin.H{"redirect": "/listings"}
		c.JSON(http.StatusNotFound, resp)
		return
	}

	sess := middleware.GetSession(c)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing fetched", gin.H{
		"car":       car,
		"favorite":  sess.IsFavorite(id),
		"comparing": sess.IsComparing(id),
	}))
}
