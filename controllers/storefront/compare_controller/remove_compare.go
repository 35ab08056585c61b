package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// RemoveCompare godoc
// @Summary Remove a compare pick
// @Description Drops one listing from the comparison selection. Removing an id that is not selected is a no-op.
// @Tags Store - Compare
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/compare/{id} [delete]
func RemoveCompare(c *gin.Context) {
	id := c.Param("id")

	sess := middleware.GetSession(c)
	sess.RemoveCompare(id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Compare pick removed", gin.H{
		"id":  id,
		"ids": sess.CompareIDs(),
	}))
}
