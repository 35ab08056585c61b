package session_controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/listing"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

type filterUpdateRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

// UpdateFilter godoc
// @Summary Update one filter field
// @Description Sets a single filter field from its JSON value. A null value clears the field back to unconstrained. Unknown fields are rejected with the known field list.
// @Tags Store - Session
// @Accept json
// @Produce json
// @Param update body filterUpdateRequest true "Field update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/store/session/filters [patch]
func UpdateFilter(c *gin.Context) {
	var req filterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess := middleware.GetSession(c)

	err := sess.UpdateFilters(func(f *models.CarFilters) error {
		return listing.ApplyUpdate(f, req.Field, req.Value)
	})
	if err != nil {
		if errors.Is(err, listing.ErrUnknownFilterField) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown filter field"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter value"))
		return
	}

	filters := sess.Filters()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter updated", gin.H{
		"filters":       filters,
		"activeFilters": listing.ActiveFilterCount(filters),
	}))
}
