package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/compare"
	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/middleware"
	"github.com/pavich5/AutoMK/models"
)

// GetComparison godoc
// @Summary Get the comparison table
// @Description Builds the side-by-side table for the session's compare picks, columns in selection order. An empty selection yields the explicit empty state rather than an error.
// @Tags Store - Compare
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/compare [get]
func GetComparison(c *gin.Context) {
	sess := middleware.GetSession(c)

	cars := make([]models.Car, 0)
	for _, id := range sess.CompareIDs() {
		if car, ok := config.Catalog.Get(id); ok {
			cars = append(cars, car)
		}
	}

	table := compare.BuildTable(cars)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison built", table))
}
