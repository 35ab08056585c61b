package listing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pavich5/AutoMK/models"
	"github.com/pavich5/AutoMK/submission"
)

const maxUploadImages = 10

// UploadListingImages godoc
// @Summary Upload sell-wizard images
// @Description Reads the uploaded image files concurrently and returns them as data URLs, in upload order. One unreadable file fails the whole batch.
// @Tags Store - Listings
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/store/listings/images [post]
func UploadListingImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}

	files := form.File["images"]
	if len(files) > maxUploadImages {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Too many images"))
		return
	}

	urls, err := submission.ReadImageBatch(files)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read images"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images processed", gin.H{
		"images": urls,
	}))
}
