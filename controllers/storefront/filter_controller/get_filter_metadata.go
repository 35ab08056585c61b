package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	metadata_cache "github.com/pavich5/AutoMK/cache"
	"github.com/pavich5/AutoMK/config"
	"github.com/pavich5/AutoMK/data"
	"github.com/pavich5/AutoMK/models"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Returns the filters panel vocabularies plus price and year bounds derived from the live catalog. Cached for a few minutes; publishing a listing invalidates the cache.
// @Tags Store - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /api/v1/store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := metadata_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched (cached)", cached))
		return
	}

	metadata := buildMetadata(config.Catalog.All())
	metadata_cache.Set(metadata)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func buildMetadata(cars []models.Car) models.FilterMetadata {
	metadata := models.FilterMetadata{
		Brands:        data.Brands,
		Cities:        data.Cities,
		FuelTypes:     models.FuelTypes(),
		Transmissions: models.TransmissionTypes(),
		BodyTypes:     models.BodyTypes(),
		Drives:        models.DriveTypes(),
		Equipment:     data.EquipmentOptions,
		Total:         len(cars),
	}

	for _, car := range cars {
		if metadata.PriceRange == nil {
			metadata.PriceRange = &models.RangeData{Min: car.Price, Max: car.Price}
			metadata.YearRange = &models.RangeData{Min: car.Year, Max: car.Year}
			continue
		}
		if car.Price < metadata.PriceRange.Min {
			metadata.PriceRange.Min = car.Price
		}
		if car.Price > metadata.PriceRange.Max {
			metadata.PriceRange.Max = car.Price
		}
		if car.Year < metadata.YearRange.Min {
			metadata.YearRange.Min = car.Year
		}
		if car.Year > metadata.YearRange.Max {
			metadata.YearRange.Max = car.Year
		}
	}

	return metadata
}
