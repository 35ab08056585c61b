package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// ClearFilters godoc
// @Summary Clear every filter
// @Description Resets the session's filter spec back to empty. The sort key is untouched.
// @Tags Store - Session
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/session/filters [delete]
func ClearFilters(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.ClearFilters()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters cleared", gin.H{
		"filters":       models.CarFilters{},
		"activeFilters": 0,
	}))
}
