package listing_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	metadata_cache "github.com/pavich5/AutoMK/cache"
	"github.com/pavich5/AutoMK/catalog"
	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/models"
	"github.com/pavich5/AutoMK/submission"
)

// CreateListing godoc
// @Summary Publish a listing
// @Description Builds a complete listing from the sell form and prepends it to the catalog. Missing or unparsable fields fall back to defaults; submission never fails on user input.
// @Tags Store - Listings
// @Accept json
// @Produce json
// @Param form body models.ListingForm true "Sell form"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/store/listings [post]
func CreateListing(c *gin.Context) {
	var form models.ListingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	car := submission.Build(form, time.Now())

	if err := config.Catalog.Add(car); err != nil {
		if errors.Is(err, catalog.ErrDuplicateID) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Listing already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to publish listing"))
		return
	}

	// Catalog bounds changed, so the filters panel payload is stale.
	metadata_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Listing published successfully", car))
}
