package listing_controller

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/models"
)

// parsePagination reads and clamps the page/limit query params.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}

// paginate slices one page out of the already-sorted view and builds
// the pagination meta. Pages past the end come back empty, not as an
// error.
func paginate(cars []models.Car, page, limit int) ([]models.Car, *models.Pagination) {
	total := len(cars)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
	return cars[start:end], meta
}
