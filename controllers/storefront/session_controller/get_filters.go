package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/listing"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// GetFilters godoc
// @Summary Get the session filter state
// @Description Returns the current filter spec, the active-filter count and the sort key
// @Tags Store - Session
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/session/filters [get]
func GetFilters(c *gin.Context) {
	sess := middleware.GetSession(c)
	filters := sess.Filters()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched", gin.H{
		"filters":       filters,
		"activeFilters": listing.ActiveFilterCount(filters),
		"sort":          sess.Sort(),
	}))
}
