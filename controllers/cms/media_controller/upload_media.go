package media_controller

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/utils"
)

const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/avif": true,
}

// UploadMedia godoc
// @Summary Upload an image
// @Description Proxy an image upload to the media host so credentials stay server-side
// @Tags Admin - Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder"
// @Success 201 {object} models.ApiResponse{data=services.MediaAsset}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Media host failed"
// @Failure 503 {object} models.ApiResponse "Media host not configured"
// @Router /admin/media [post]
func UploadMedia(c *gin.Context) {
	store, err := services.GetMediaStore()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Media storage is not configured"))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse(c, "File exceeds 10MB"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "file is required"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unsupported image type"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read file"))
		return
	}
	defer file.Close()

	folder := strings.Trim(c.PostForm("folder"), "/ ")
	if strings.Contains(folder, "..") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid folder"))
		return
	}
	if folder == "" {
		folder = config.Load().Cloudinary.Folder
	}
	name := utils.Slugify(strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename)))

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	asset, err := store.Upload(ctx, file, name, folder)
	if err != nil {
		log.Error().Err(err).Str("op", "admin.media.upload").Str("file", name).Msg("upload failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	log.Info().Str("op", "admin.media.upload").Str("public_id", asset.PublicID).Msg("image uploaded")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", asset))
}
