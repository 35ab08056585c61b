package favorites_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// GetFavorites godoc
// @Summary Get favorited listings
// @Description Resolves the session's favorite ids against the catalog, in the order they were added. Ids that no longer resolve are skipped.
// @Tags Store - Favorites
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/favorites [get]
func GetFavorites(c *gin.Context) {
	sess := middleware.GetSession(c)

	cars := make([]models.Car, 0)
	for _, id := range sess.FavoriteIDs() {
		if car, ok := config.Catalog.Get(id); ok {
			cars = append(cars, car)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched", cars))
}
