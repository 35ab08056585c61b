package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

type sortRequest struct {
	Sort models.SortOption `json:"sort" binding:"required"`
}

// SetSort godoc
// @Summary Set the sort key
// @Description Replaces the session's sort key with one of the eight known options
// @Tags Store - Session
// @Accept json
// @Produce json
// @Param sort body sortRequest true "Sort key"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/store/session/sort [put]
func SetSort(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if !models.ValidSort(req.Sort) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown sort option"))
		return
	}

	sess := middleware.GetSession(c)
	sess.SetSort(req.Sort)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sort updated", gin.H{
		"sort": req.Sort,
	}))
}
