package favorites_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Adds the listing to the session's favorites, or removes it if already there. Favorites are unbounded.
// @Tags Store - Favorites
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/favorites/{id} [post]
func ToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	if _, ok := config.Catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
		return
	}

	sess := middleware.GetSession(c)
	favorite := sess.ToggleFavorite(id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite toggled", gin.H{
		"id":       id,
		"favorite": favorite,
		"count":    len(sess.FavoriteIDs()),
	}))
}
