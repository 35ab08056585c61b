package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
	"github.com/pavich5/AutoMK/selection"
)

// ToggleCompare godoc
// @Summary Toggle a compare pick
// @Description Adds the listing to the comparison selection, or removes it if already there. The selection holds at most three listings; a toggle past the cap is a silent no-op reported via the comparing flag.
// @Tags Store - Compare
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/compare/{id} [post]
func ToggleCompare(c *gin.Context) {
	id := c.Param("id")

	if _, ok := config.Catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
		return
	}

	sess := middleware.GetSession(c)
	comparing := sess.ToggleCompare(id)
	ids := sess.CompareIDs()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Compare toggled", gin.H{
		"id":        id,
		"comparing": comparing,
		"ids":       ids,
		"limit":     selection.CompareLimit,
	}))
}
